package types

import "errors"

// ErrIncompleteProfile is returned when a profile lacks a colour or an icon.
var ErrIncompleteProfile = errors.New("profile needs two colours and an icon")

// Profile is the visual identity shown in the account badge.
//
// ColorA and ColorB are the gradient endpoints (top-left to bottom-right).
// They are kept as given; renderers decide how to interpret them.
type Profile struct {
	ColorA string `json:"colorA"`
	ColorB string `json:"colorB"`
	Icon   Icon   `json:"icon"`
}

// Validate reports whether p carries exactly two colours and a known icon.
func (p Profile) Validate() error {
	if p.ColorA == "" || p.ColorB == "" || !p.Icon.Valid() {
		return ErrIncompleteProfile
	}
	return nil
}

// Account is the signed-in account as held by the auth state.
//
// Seed is base64 key material; DeviceName is ciphertext sealed with that key.
type Account struct {
	ID         AccountID `json:"id"`
	UserID     string    `json:"userId,omitempty"`
	Token      string    `json:"token,omitempty"`
	BackendURL string    `json:"backendUrl,omitempty"`
	Seed       string    `json:"seed,omitempty"`
	DeviceName string    `json:"deviceName,omitempty"`
	Profile    Profile   `json:"profile"`
}

// HasSeed reports whether key material is present on the account.
func (a *Account) HasSeed() bool { return a != nil && a.Seed != "" }

// CreateAccountParams carries what is needed to set up a local account.
//
// A zero Profile asks the service to pick one at random.
type CreateAccountParams struct {
	Passphrase string
	Mnemonic   string
	DeviceName string
	UserID     string
	Token      string
	BackendURL string
	Profile    Profile
}

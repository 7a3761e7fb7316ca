package settings

import "accountdeck/internal/domain"

// ToggleProxy turns the worker list on (as an empty list) or off.
// Turning it off drops every entry.
func ToggleProxy(urls domain.ProxyURLs) domain.ProxyURLs {
	if urls == nil {
		return domain.ProxyURLs{}
	}
	return nil
}

// AddProxy appends an empty entry. A disabled list is treated as empty.
func AddProxy(urls domain.ProxyURLs) domain.ProxyURLs {
	out := make(domain.ProxyURLs, 0, len(urls)+1)
	out = append(out, urls...)
	return append(out, "")
}

// ChangeProxy returns a copy of urls with entry i set to value.
// An index outside the list leaves the entries as they are.
func ChangeProxy(i int, value string) func(domain.ProxyURLs) domain.ProxyURLs {
	return func(urls domain.ProxyURLs) domain.ProxyURLs {
		out := make(domain.ProxyURLs, 0, len(urls))
		for j, v := range urls {
			if j == i {
				v = value
			}
			out = append(out, v)
		}
		return out
	}
}

// RemoveProxy returns a copy of urls without entry i.
// An index outside the list leaves the entries as they are.
func RemoveProxy(i int) func(domain.ProxyURLs) domain.ProxyURLs {
	return func(urls domain.ProxyURLs) domain.ProxyURLs {
		out := make(domain.ProxyURLs, 0, len(urls))
		for j, v := range urls {
			if j != i {
				out = append(out, v)
			}
		}
		return out
	}
}

// ProxyEditor issues worker list edits through a Setter.
type ProxyEditor struct {
	set Setter[domain.ProxyURLs]
}

// NewProxyEditor returns an editor bound to set.
func NewProxyEditor(set Setter[domain.ProxyURLs]) ProxyEditor {
	return ProxyEditor{set: set}
}

// Toggle switches custom workers on or off.
func (e ProxyEditor) Toggle() { e.set(Apply(ToggleProxy)) }

// Add appends an empty worker entry.
func (e ProxyEditor) Add() { e.set(Apply(AddProxy)) }

// Change sets worker i to value.
func (e ProxyEditor) Change(i int, value string) { e.set(Apply(ChangeProxy(i, value))) }

// Remove deletes worker i.
func (e ProxyEditor) Remove(i int) { e.set(Apply(RemoveProxy(i))) }

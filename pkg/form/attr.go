package form

// If returns token when cond is true and the empty string otherwise. The
// boolean attribute helpers below all reduce to it; the result is embedded
// directly into a rendered element tag.
func If(cond bool, token string) string {
	if cond {
		return token
	}
	return ""
}

// Checked renders the "checked" attribute token for checkbox and radio
// inputs.
func Checked(cond bool) string {
	return If(cond, "checked")
}

// Selected renders the "selected" attribute token for option elements.
func Selected(cond bool) string {
	return If(cond, "selected")
}

// ReadOnly renders the "readonly" attribute token.
func ReadOnly(cond bool) string {
	return If(cond, "readonly")
}

// Disabled renders the "disabled" attribute token.
func Disabled(cond bool) string {
	return If(cond, "disabled")
}

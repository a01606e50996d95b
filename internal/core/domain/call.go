package domain

// Call is an opaque pallet call. Its encoding is owned by the chain client.
type Call struct {
	Section string         `json:"section"`
	Method  string         `json:"method"`
	Args    map[string]any `json:"args,omitempty"`
}

// IsZero reports whether the call is unset.
func (c Call) IsZero() bool {
	return c.Section == "" && c.Method == ""
}

// Name returns "section.method".
func (c Call) Name() string {
	return c.Section + "." + c.Method
}

// AsMulti wraps call so that it can be approved by one signatory of a
// multisig account. otherSignatories must exclude the signing signatory.
func AsMulti(call Call, threshold int, otherSignatories []AccountID) Call {
	others := make([]AccountID, len(otherSignatories))
	copy(others, otherSignatories)
	SortAccountIDs(others)

	return Call{
		Section: "multisig",
		Method:  "asMulti",
		Args: map[string]any{
			"threshold":         threshold,
			"other_signatories": others,
			"maybe_timepoint":   nil,
			"call":              call,
		},
	}
}

package calculation

// Rejection is a terminal client-facing failure: a business-rule gate or a
// guarantee-provider refusal. Details carries the payload the caller needs
// to see (the full aggregate, or the raw provider response).
type Rejection struct {
	Message string
	Details interface{}
}

func (r *Rejection) Error() string {
	return r.Message
}

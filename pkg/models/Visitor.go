package models

/*
Visitor identifies one browser through the session cookie. Saved lists
are scoped to it.
*/
type Visitor struct {
	ID string
}

func (v *Visitor) IsAnonymous() bool {
	return v == nil || v.ID == ""
}

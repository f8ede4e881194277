package models

type RenderMode string

const (
	RenderRow    RenderMode = "row"
	RenderGrid   RenderMode = "grid"
	RenderGenres RenderMode = "genres"
)

/*
Section describes one backend-backed block of the site: a gallery row on
the browse page or a category card in the section browser. Field names
the response envelope key holding the payload and Mode decides how that
payload is rendered.
*/
type Section struct {
	ID         string
	Title      string
	Subtitle   string
	Icon       string
	Accent     string
	Endpoint   string
	Field      string
	Mode       RenderMode
	UserScoped bool
}

func (s Section) IsGenreList() bool {
	return s.Mode == RenderGenres
}

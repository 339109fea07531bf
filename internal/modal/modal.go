// Package modal tracks which single modal, if any, is on screen.
package modal

type Kind string

const (
	None           Kind = ""
	LocaleSwitcher Kind = "locale_switcher"
)

// Controller is what views get to open or dismiss modals.
type Controller interface {
	IsOpen() bool
	Open(kind Kind)
	Close()
}

// Store holds at most one open modal. Opening replaces whatever was open.
type Store struct {
	kind Kind
	open bool
}

func NewStore() *Store { return &Store{} }

func (s *Store) IsOpen() bool { return s.open }

// Kind is None while nothing is open.
func (s *Store) Kind() Kind { return s.kind }

func (s *Store) IsOpenFor(kind Kind) bool { return s.open && s.kind == kind }

func (s *Store) Open(kind Kind) {
	s.kind = kind
	s.open = true
}

func (s *Store) Close() {
	s.kind = None
	s.open = false
}

var _ Controller = (*Store)(nil)

package expr

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ErrInvalidConnectorName is returned for names that do not start with an
// upper-case letter.
var ErrInvalidConnectorName = errors.New("invalid connector name")

// Desc describes a connector name. Descriptors are interned by a DescTable and
// compared by pointer identity.
type Desc struct {
	Name string

	// UC identifies the upper-case head of the name. Descriptors sharing a
	// head share UC.
	UC uint32

	// LC is a digest of the lower-case subscript, 0 when there is none.
	LC uint32
}

// Head returns the upper-case part of the name.
func (d *Desc) Head() string {
	h, _ := splitName(d.Name)
	return h
}

// Subscript returns the part of the name after the upper-case head.
func (d *Desc) Subscript() string {
	_, s := splitName(d.Name)
	return s
}

func (d *Desc) String() string {
	return d.Name
}

// DescTable interns connector descriptors. It is safe for concurrent use.
type DescTable struct {
	mu     sync.RWMutex
	byName map[string]*Desc
	heads  map[string]uint32
}

// NewDescTable creates an empty table.
func NewDescTable() *DescTable {
	return &DescTable{
		byName: make(map[string]*Desc),
		heads:  make(map[string]uint32),
	}
}

// Intern returns the descriptor for name, creating it on first use.
func (t *DescTable) Intern(name string) (*Desc, error) {
	t.mu.RLock()
	d, ok := t.byName[name]
	t.mu.RUnlock()
	if ok {
		return d, nil
	}

	head, sub := splitName(name)
	if head == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidConnectorName, name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if d, ok := t.byName[name]; ok {
		return d, nil
	}

	uc, ok := t.heads[head]
	if !ok {
		uc = uint32(len(t.heads) + 1) //nolint:gosec // table size is far below 2^32
		t.heads[head] = uc
	}
	d = &Desc{Name: name, UC: uc}
	if sub != "" {
		d.LC = uint32(xxhash.Sum64String(sub)) //nolint:gosec // truncation intended
	}
	t.byName[name] = d
	return d, nil
}

// MustIntern is like Intern but panics on an invalid name.
func (t *DescTable) MustIntern(name string) *Desc {
	d, err := t.Intern(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup returns the descriptor for name if it was interned.
func (t *DescTable) Lookup(name string) (*Desc, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	d, ok := t.byName[name]
	return d, ok
}

// Len returns the number of interned descriptors.
func (t *DescTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byName)
}

// splitName splits a connector name into its upper-case head (letters, digits
// and '_' after a leading upper-case letter) and the remaining subscript.
func splitName(name string) (string, string) {
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return "", name
	}
	i := 1
	for i < len(name) {
		c := name[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			i++
			continue
		}
		break
	}
	return name[:i], name[i:]
}

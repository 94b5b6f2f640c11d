package schedule

import "fmt"

// StaffMember is one roster entry. Eligible controls whether the member takes
// part in newly generated rotations; it never affects existing periods.
type StaffMember struct {
	Name     string `json:"name"`
	Eligible bool   `json:"eligible"`
}

// Roster is the ordered set of duty staff. Names are unique (case-sensitive
// exact match) and insertion order is preserved.
type Roster struct {
	members []StaffMember
}

// NewRoster builds a roster from an initial member list, e.g. the persisted
// duty_staff table. Duplicate names in the initial list keep the first entry.
func NewRoster(initial []StaffMember) *Roster {
	r := &Roster{members: make([]StaffMember, 0, len(initial))}
	for _, m := range initial {
		if r.indexOf(m.Name) == -1 {
			r.members = append(r.members, m)
		}
	}
	return r
}

func (r *Roster) indexOf(name string) int {
	for i, m := range r.members {
		if m.Name == name {
			return i
		}
	}
	return -1
}

func (r *Roster) AddMember(name string) error {
	if name == "" {
		return fmt.Errorf("%w: اسم المناوب مطلوب", ErrValidation)
	}
	if r.indexOf(name) != -1 {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	r.members = append(r.members, StaffMember{Name: name, Eligible: true})
	return nil
}

func (r *Roster) RenameMember(oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("%w: اسم المناوب مطلوب", ErrValidation)
	}
	i := r.indexOf(oldName)
	if i == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, oldName)
	}
	if j := r.indexOf(newName); j != -1 && j != i {
		return fmt.Errorf("%w: %s", ErrDuplicateName, newName)
	}
	r.members[i].Name = newName
	return nil
}

func (r *Roster) RemoveMember(name string) error {
	i := r.indexOf(name)
	if i == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	r.members = append(r.members[:i], r.members[i+1:]...)
	return nil
}

func (r *Roster) ToggleEligibility(name string) error {
	i := r.indexOf(name)
	if i == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	r.members[i].Eligible = !r.members[i].Eligible
	return nil
}

// SelectedNames returns the eligible member names in roster insertion order.
// This is the staff sequence fed to Generate.
func (r *Roster) SelectedNames() []string {
	names := make([]string, 0, len(r.members))
	for _, m := range r.members {
		if m.Eligible {
			names = append(names, m.Name)
		}
	}
	return names
}

func (r *Roster) Members() []StaffMember {
	members := make([]StaffMember, len(r.members))
	copy(members, r.members)
	return members
}

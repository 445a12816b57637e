package reservation

import "strings"

// Guest is a secondary attendee; its phone links the booking to the guest's own history.
type Guest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

func NewGuest(name, phone, email string) Guest {
	return Guest{
		Name:  strings.TrimSpace(name),
		Phone: strings.TrimSpace(phone),
		Email: strings.TrimSpace(email),
	}
}

type Details struct {
	EventType    string
	PeopleCount  int
	Observations string
	Guests       []Guest
}

func (d Details) normalized() Details {
	d.EventType = strings.TrimSpace(d.EventType)
	d.Observations = strings.TrimSpace(d.Observations)
	if d.PeopleCount < 0 {
		d.PeopleCount = 0
	}
	guests := make([]Guest, 0, len(d.Guests))
	for _, g := range d.Guests {
		if g.Phone == "" && g.Name == "" {
			continue
		}
		guests = append(guests, g)
	}
	d.Guests = guests
	return d
}

package models

import (
	"InfoCity/internal/query"
	"fmt"
)

type Town struct {
	BaseModel
	Name    string   `gorm:"type:varchar(255);not null;index" json:"name"`
	Country string   `gorm:"type:varchar(255)" json:"country"`
	State   string   `gorm:"type:varchar(255)" json:"state"`
	Users   []User   `gorm:"foreignKey:TownID" json:"users,omitempty"`
	Adverts []Advert `gorm:"foreignKey:TownID" json:"adverts,omitempty"`
}

// AddUser attaches the user to the town. The user is not persisted with the town.
func (t *Town) AddUser(user *User) {
	user.TownID = &t.ID
	t.Users = append(t.Users, *user)
}

func (t Town) NamedQueries() map[string]query.Named {
	return map[string]query.Named{
		"Town.findAll":       {Order: "id"},
		"Town.findByName":    {Where: "name = @name", Order: "id"},
		"Town.findByCountry": {Where: "country = @country", Order: "name"},
	}
}

func (t Town) String() string {
	return fmt.Sprintf("Town{id=%d, name=%s, country=%s, state=%s, users=%d}",
		t.ID, t.Name, t.Country, t.State, len(t.Users))
}

package models

import (
	"InfoCity/internal/query"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	BaseModel
	FirstName string `gorm:"type:varchar(255)" json:"first_name"`
	LastName  string `gorm:"type:varchar(255)" json:"last_name"`
	Email     string `gorm:"type:varchar(255);index" json:"email"`
	Password  string `gorm:"type:varchar(255)" json:"-"`
	TownID    *uint  `gorm:"index" json:"town_id,omitempty"`
}

func NewUser(id uint, firstName, lastName, email, password string) *User {
	return &User{
		BaseModel: BaseModel{ID: id},
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	}
}

// BeforeSave hashes a clear-text password. Values that already are bcrypt
// hashes are stored as they are, so saving a loaded user does not re-hash.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password == "" {
		return nil
	}
	if _, err := bcrypt.Cost([]byte(u.Password)); err == nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func (u User) NamedQueries() map[string]query.Named {
	return map[string]query.Named{
		"User.findByEmail": {Where: "email = @email", Order: "id"},
		"User.findByTown":  {Where: "town_id = @town", Order: "last_name, first_name"},
	}
}

func (u User) String() string {
	return fmt.Sprintf("User{id=%d, firstName=%s, lastName=%s, email=%s}",
		u.ID, u.FirstName, u.LastName, u.Email)
}

type UserBuilder struct {
	user User
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{}
}

func (b *UserBuilder) SetID(id uint) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) SetFirstName(firstName string) *UserBuilder {
	b.user.FirstName = firstName
	return b
}

func (b *UserBuilder) SetLastName(lastName string) *UserBuilder {
	b.user.LastName = lastName
	return b
}

func (b *UserBuilder) SetEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) SetPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) Build() *User {
	user := b.user
	return &user
}

package model

import "time"

// Friend is one entry in a user's emergency contact list. IsSOS marks
// contacts that receive priority emergency shares.
type Friend struct {
	PhoneNumber string `bson:"phoneNumber" json:"phoneNumber"`
	IsSOS       bool   `bson:"isSOS" json:"isSOS"`
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
}

// User is the persisted account document. The 10-digit phone number is the
// natural primary key, so it doubles as the document id. Password and Pin
// hold bcrypt hashes, never the raw secret.
type User struct {
	PhoneNumber string    `bson:"_id" json:"phoneNumber"`
	Password    string    `bson:"password" json:"-"`
	Pin         string    `bson:"pin,omitempty" json:"-"`
	Name        string    `bson:"name,omitempty" json:"name"`
	Friends     []Friend  `bson:"friends" json:"friends"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) ToDto() UserDto {
	friends := u.Friends
	if friends == nil {
		friends = []Friend{}
	}
	return UserDto{
		PhoneNumber: u.PhoneNumber,
		Name:        u.Name,
		PinSet:      u.Pin != "",
		Friends:     friends,
		CreatedAt:   u.CreatedAt,
	}
}

// UserDto is the profile shape returned to the app. Secret fields are
// reduced to a PinSet flag so the client can branch between PIN creation
// and PIN login screens.
type UserDto struct {
	PhoneNumber string    `json:"phoneNumber"`
	Name        string    `json:"name"`
	PinSet      bool      `json:"pinSet"`
	Friends     []Friend  `json:"friends"`
	CreatedAt   time.Time `json:"createdAt"`
}

package models

import "gorm.io/gorm"

// User represents a user in the system. Friends and FriendRequests are
// self-referential sets: a row in user_friends means "friend_id is a friend
// of user_id" (kept symmetric by writing both directions), and a row in
// user_friend_requests means "requester_id asked to befriend user_id".
type User struct {
	gorm.Model
	Username     string   `gorm:"size:255;unique;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Mood         string   `gorm:"size:255"`
	Interests    []string `gorm:"serializer:json"`

	Friends        []*User `gorm:"many2many:user_friends;joinForeignKey:UserID;joinReferences:FriendID"`
	FriendRequests []*User `gorm:"many2many:user_friend_requests;joinForeignKey:UserID;joinReferences:RequesterID"`
}

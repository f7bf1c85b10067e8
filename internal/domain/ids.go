// Package domain provides definitions of all ledger entities: identities,
// accounts, blocks and the errors their execution can produce.
package domain

import (
	"fmt"
	"strconv"
)

// UserID identifies a chat platform member owning a personal account.
type UserID uint64

// GuildID identifies a chat platform server.
type GuildID uint64

// ChannelID identifies a chat platform channel.
type ChannelID uint64

// CagnotteID identifies a pooled fund. Ids start at 1; 0 means the request
// did not name a cagnotte.
type CagnotteID uint64

// String returns the id as displayed to players, e.g. "€3".
func (id CagnotteID) String() string {
	return "€" + strconv.FormatUint(uint64(id), 10)
}

// AddressKind tells which sub-collection of the registry an address refers to.
type AddressKind string

// Address kinds.
const (
	PersonalAddress AddressKind = "user"
	CagnotteAddress AddressKind = "cagnotte"
)

// Address points at a personal account or a cagnotte.
type Address struct {
	Kind AddressKind `json:"kind"`
	ID   uint64      `json:"id"`
}

// UserAddress returns the address of the personal account of id.
func UserAddress(id UserID) Address {
	return Address{Kind: PersonalAddress, ID: uint64(id)}
}

// CagnotteAddressOf returns the address of the cagnotte id.
func CagnotteAddressOf(id CagnotteID) Address {
	return Address{Kind: CagnotteAddress, ID: uint64(id)}
}

// User returns the user id and whether a is a personal address.
func (a Address) User() (UserID, bool) {
	return UserID(a.ID), a.Kind == PersonalAddress
}

// Cagnotte returns the cagnotte id and whether a is a cagnotte address.
func (a Address) Cagnotte() (CagnotteID, bool) {
	return CagnotteID(a.ID), a.Kind == CagnotteAddress
}

func (a Address) String() string {
	if a.Kind == CagnotteAddress {
		return CagnotteID(a.ID).String()
	}

	return fmt.Sprintf("%s:%d", a.Kind, a.ID)
}

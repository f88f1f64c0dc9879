package services

import (
	"fmt"

	"blububb/internal/models"
	"blububb/internal/store"

	"golang.org/x/crypto/bcrypt"
)

const membersCollection = "members"

// MemberService handles member registration, lookup and login.
type MemberService struct {
	store store.Store
}

// NewMemberService creates a new MemberService.
func NewMemberService(st store.Store) *MemberService {
	return &MemberService{
		store: st,
	}
}

// stripPasswordHash returns a copy of the member without the password_hash
// field. Responses never expose stored hashes.
func stripPasswordHash(member models.Record) models.Record {
	out := member.Clone()
	delete(out, "password_hash")
	return out
}

// ListMembers retrieves all members with password hashes stripped.
func (s *MemberService) ListMembers() ([]models.Record, error) {
	doc, err := s.store.Load(membersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	members := doc.Records(membersCollection)
	out := make([]models.Record, 0, len(members))
	for _, m := range members {
		out = append(out, stripPasswordHash(m))
	}
	return out, nil
}

// GetMember retrieves a single member by id, with the password hash
// stripped.
func (s *MemberService) GetMember(id string) (models.Record, error) {
	doc, err := s.store.Load(membersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	for _, m := range doc.Records(membersCollection) {
		if m.ID() == id {
			return stripPasswordHash(m), nil
		}
	}
	return nil, fmt.Errorf("member %s: %w", id, ErrNotFound)
}

// Register creates a new member. The email must not already be registered
// (exact, case-sensitive match). The supplied password is removed from the
// record and stored as a bcrypt hash under password_hash.
func (s *MemberService) Register(member models.Record) (models.Record, error) {
	doc, err := s.store.Load(membersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	members := doc.Records(membersCollection)
	email := member.String("email")
	for _, m := range members {
		if m.String("email") == email {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(member.String("password")), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member = member.Clone()
	delete(member, "password")
	member["id"] = newRecordID()
	member["joined_date"] = today()
	member["total_orders"] = 0
	member["status"] = "active"
	member["password_hash"] = string(hash)

	doc.SetRecords(membersCollection, append(members, member))
	if err := s.store.Save(membersCollection, doc); err != nil {
		return nil, fmt.Errorf("failed to save members: %w", err)
	}
	return stripPasswordHash(member), nil
}

// Login authenticates a member by email and password, returning the member
// with the password hash stripped. Lookup misses and password mismatches
// both report ErrInvalidCredentials so callers cannot probe for registered
// emails.
func (s *MemberService) Login(email, password string) (models.Record, error) {
	doc, err := s.store.Load(membersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	for _, m := range doc.Records(membersCollection) {
		if m.String("email") != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(m.String("password_hash")), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		return stripPasswordHash(m), nil
	}
	return nil, ErrInvalidCredentials
}

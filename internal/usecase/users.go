package usecase

import (
	"context"
	"errors"

	"gridworks/internal/domain"
)

// CreateUserInput carries the writable fields of a user. The plaintext
// password is hashed before it reaches the store.
type CreateUserInput struct {
	Name     *string
	Email    string
	Password string
}

// UpdateUserInput is the user patch at the use-case boundary: the password
// travels in plaintext and is hashed here.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

func (s Service) CreateUser(ctx context.Context, in CreateUserInput) (UserOutput, error) {
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return UserOutput{}, err
	}
	u, err := s.Stores.Users.InsertUser(ctx, domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return UserOutput{}, err
	}
	return userOutput(u), nil
}

func (s Service) GetUser(ctx context.Context, id string) (UserOutput, error) {
	u, err := s.Stores.Users.GetUser(ctx, id)
	if err != nil {
		return UserOutput{}, err
	}
	return userOutput(u), nil
}

func (s Service) ListUsers(ctx context.Context, q domain.PageQuery) (ListOutput[UserOutput], error) {
	page, err := s.Stores.Users.ListUsers(ctx, s.normalize(q))
	if err != nil {
		return ListOutput[UserOutput]{}, err
	}
	return mapPage(page, userOutput), nil
}

func (s Service) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (UserOutput, error) {
	p := domain.UserPatch{Name: in.Name, Email: in.Email}
	if in.Password != nil {
		hash, err := s.Hasher.Hash(*in.Password)
		if err != nil {
			return UserOutput{}, err
		}
		p.PasswordHash = &hash
	}
	u, err := s.Stores.Users.UpdateUser(ctx, id, p)
	if err != nil {
		return UserOutput{}, err
	}
	return userOutput(u), nil
}

func (s Service) DeleteUser(ctx context.Context, id string) error {
	return s.Stores.Users.DeleteUser(ctx, id)
}

// Authenticate resolves the user by email and checks the password. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s Service) Authenticate(ctx context.Context, email, password string) (UserOutput, error) {
	u, err := s.Stores.Users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return UserOutput{}, domain.ErrInvalidCredentials
		}
		return UserOutput{}, err
	}
	if err := s.Hasher.Compare(u.PasswordHash, password); err != nil {
		return UserOutput{}, domain.ErrInvalidCredentials
	}
	return userOutput(u), nil
}

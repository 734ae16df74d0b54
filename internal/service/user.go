package service

import (
	"context"
	"fmt"
	"regexp"

	"comanda/internal/config"
	"comanda/internal/model"
	"comanda/internal/repository"
	"comanda/pkg/util"
)

var emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,4})+$`)

// UserService handles user business logic: validation, duplicate checks and
// the self-or-admin ownership rules.
type UserService struct {
	users repository.IUserRepository
}

// NewUserService creates a new user service
func NewUserService(users repository.IUserRepository) *UserService {
	return &UserService{users: users}
}

// Authenticate checks credentials and returns the matching user. Unknown
// email reports ErrNotFound; a wrong password reports ErrInvalid.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", model.ErrInvalid)
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", model.ErrNotFound)
	}
	if !util.VerifyPassword(password, user.Password) {
		return nil, fmt.Errorf("%w: wrong password", model.ErrInvalid)
	}
	return user, nil
}

// List returns all users. Password hashes never serialize.
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.users.FindAll(ctx)
}

// Get returns the user uid names, by id or email. Only the user itself or an
// admin may read it.
func (s *UserService) Get(ctx context.Context, ident model.Identity, uid string) (*model.User, error) {
	if !ident.IsAdmin() && !ident.Owns(uid) {
		return nil, model.ErrForbidden
	}
	return s.lookup(ctx, uid)
}

// Create registers a new user. The email must be valid and unused, the
// password at least six characters. Role defaults to waiter; the admin flag
// is always derived from the role name.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", model.ErrInvalid)
	}
	if !emailRegex.MatchString(req.Email) {
		return nil, fmt.Errorf("%w: email must be a valid address", model.ErrInvalid)
	}
	if len(req.Password) < config.MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", model.ErrInvalid, config.MinPasswordLength)
	}

	role := model.RoleWaiter
	if req.Role != nil {
		if !model.ValidRole(*req.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", model.ErrInvalid, *req.Role)
		}
		role = *req.Role
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s", model.ErrDuplicate, req.Email)
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    req.Email,
		Password: hash,
		Role:     model.NewRole(role),
	}
	return s.users.Create(ctx, user)
}

// Update applies a partial update to the user uid names. Only the user
// itself or an admin may update it; a role change is admin-only even on
// one's own account.
func (s *UserService) Update(ctx context.Context, ident model.Identity, uid string, patch *model.UpdateUserRequest) (*model.User, error) {
	if !ident.IsAdmin() && !ident.Owns(uid) {
		return nil, model.ErrForbidden
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", model.ErrInvalid)
	}
	if patch.Role != nil && !ident.IsAdmin() {
		return nil, fmt.Errorf("%w: only an admin may change roles", model.ErrForbidden)
	}

	user, err := s.lookup(ctx, uid)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		if !emailRegex.MatchString(*patch.Email) {
			return nil, fmt.Errorf("%w: email must be a valid address", model.ErrInvalid)
		}
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		if len(*patch.Password) < config.MinPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters", model.ErrInvalid, config.MinPasswordLength)
		}
		hash, err := util.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if patch.Role != nil {
		if !model.ValidRole(*patch.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", model.ErrInvalid, *patch.Role)
		}
		user.Role = model.NewRole(*patch.Role)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user uid names and returns the deleted record. Only the
// user itself or an admin may delete it.
func (s *UserService) Delete(ctx context.Context, ident model.Identity, uid string) (*model.User, error) {
	if !ident.IsAdmin() && !ident.Owns(uid) {
		return nil, model.ErrForbidden
	}
	user, err := s.lookup(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) lookup(ctx context.Context, uid string) (*model.User, error) {
	user, err := s.users.FindByIDOrEmail(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", model.ErrNotFound, uid)
	}
	return user, nil
}

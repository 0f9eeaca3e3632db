package identity

import (
	"context"

	"github.com/finopenpos/backend/internal/domain/identity"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserService manages back-office user accounts. All operations are
// admin-only; the role check happens in the HTTP layer.
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Create creates a new user account
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A user with this email already exists")
	}

	user, err := identity.NewUser(req.Email, req.Name, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users with filtering and pagination
func (s *UserService) List(ctx context.Context, filter UserListFilter) (*shared.Paginated[UserResponse], error) {
	repoFilter := filter.ToSharedFilter()

	users, err := s.userRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.userRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}

	result := shared.NewPaginated(responses, total, repoFilter.Page, repoFilter.PageSize)
	return &result, nil
}

// Update updates a user account
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
		user.Touch()
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}
	if req.Role != nil {
		if err := user.SetRole(identity.Role(*req.Role)); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		switch identity.UserStatus(*req.Status) {
		case identity.UserStatusActive:
			user.Activate()
		case identity.UserStatusInactive:
			user.Deactivate()
		default:
			return nil, shared.NewValidationError("Status must be active or inactive")
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Delete removes a user account. A user cannot delete their own
// account, so at least one admin always remains able to sign in.
func (s *UserService) Delete(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return shared.NewDomainError("SELF_DELETE", "You cannot delete your own account")
	}
	return s.userRepo.Delete(ctx, userID)
}

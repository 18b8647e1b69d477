package service

import (
	"context"
	"errors"

	"gamerate/internal/httpapi/apperrors"
	"gamerate/internal/httpapi/dto"
	"gamerate/internal/httpapi/models"
	"gamerate/internal/httpapi/repository"
	"gamerate/internal/middleware/auth"

	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, in dto.RegisterUserDTO) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.UserResponse, error)
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	SearchByName(ctx context.Context, name string) ([]dto.UserResponse, error)
	Update(ctx context.Context, id, callerID int64, callerIsAdmin bool, in dto.UpdateUserDTO) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, id, callerID int64, callerIsAdmin bool, in dto.ChangePasswordDTO) error
	Delete(ctx context.Context, id, callerID int64, callerIsAdmin bool) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register creates an account with a bcrypt-hashed password. The very first
// registered account becomes the admin; everyone after that is a regular user.
func (s *userService) Register(ctx context.Context, in dto.RegisterUserDTO) (*dto.UserResponse, error) {
	taken, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicate("User", "email", in.Email)
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
		Role:     role,
		Active:   true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicate("User", "email", in.Email)
		}
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("User", id)
		}
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}

func (s *userService) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToUserResponse(users), nil
}

func (s *userService) SearchByName(ctx context.Context, name string) ([]dto.UserResponse, error) {
	users, err := s.users.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToUserResponse(users), nil
}

func (s *userService) Update(ctx context.Context, id, callerID int64, callerIsAdmin bool, in dto.UpdateUserDTO) (*dto.UserResponse, error) {
	if !canModify(id, callerID, callerIsAdmin) {
		return nil, apperrors.NewForbidden("only the account owner or an admin may update a profile")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("User", id)
		}
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Avatar != nil {
		user.Avatar = in.Avatar
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}

// ChangePassword requires the current password even for admins acting on
// their own account; admins cannot rewrite another user's password blind.
func (s *userService) ChangePassword(ctx context.Context, id, callerID int64, callerIsAdmin bool, in dto.ChangePasswordDTO) error {
	if id != callerID {
		return apperrors.NewForbidden("only the account owner may change the password")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("User", id)
		}
		return err
	}

	if err := auth.VerifyPassword(user.Password, in.OldPassword); err != nil {
		return apperrors.NewBusinessRule("current password is incorrect")
	}

	hashed, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.users.Update(ctx, user)
}

func (s *userService) Delete(ctx context.Context, id, callerID int64, callerIsAdmin bool) error {
	if !canModify(id, callerID, callerIsAdmin) {
		return apperrors.NewForbidden("only the account owner or an admin may delete an account")
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("User", id)
		}
		return err
	}
	return s.users.Delete(ctx, id)
}

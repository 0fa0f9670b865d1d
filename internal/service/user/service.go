package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/peoplehr/hr-backend-go/internal/domain/auth"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// DefaultEmployeePassword is assigned to accounts created through the
// hr directory shortcut. Employees are expected to change it on first
// login.
const DefaultEmployeePassword = "password123"

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository}
}

func (s *UserServiceImpl) resolveManager(ctx context.Context, managerID *string) error {
	if managerID == nil {
		return nil
	}
	_, err := s.UserRepository.GetByID(ctx, *managerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrInvalidManager
		}
		return fmt.Errorf("failed to resolve manager: %w", err)
	}
	return nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionUserManage) {
		return user.UserResponse{}, user.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.resolveManager(ctx, req.ManagerID); err != nil {
		return user.UserResponse{}, err
	}

	role, _ := user.ParseRole(req.Role)
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashed,
		Role:         role,
		HourlyRate:   req.HourlyRate,
		ManagerID:    req.ManagerID,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionUserManage) {
		return user.UserResponse{}, user.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.Role != nil {
		role, _ := user.ParseRole(*req.Role)
		canonical := string(role)
		req.Role = &canonical
	}

	if err := s.resolveManager(ctx, req.ManagerID); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.Update(ctx, req)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(updated), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) (user.ListUsersResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return user.ListUsersResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionUserViewAll) {
		return user.ListUsersResponse{}, user.ErrForbidden
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return user.ListUsersResponse{}, err
	}

	resp := user.ListUsersResponse{Total: len(users), Users: make([]user.UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, user.NewUserResponse(u))
	}
	return resp, nil
}

// ListEmployees implements user.UserService.
func (s *UserServiceImpl) ListEmployees(ctx context.Context) (user.ListUsersResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return user.ListUsersResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionUserManage) {
		return user.ListUsersResponse{}, user.ErrForbidden
	}

	employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return user.ListUsersResponse{}, err
	}

	resp := user.ListUsersResponse{Total: len(employees), Users: make([]user.UserResponse, 0, len(employees))}
	for _, u := range employees {
		resp.Users = append(resp.Users, user.NewUserResponse(u))
	}
	return resp, nil
}

// AddEmployee implements user.UserService.
func (s *UserServiceImpl) AddEmployee(ctx context.Context, req user.AddEmployeeRequest) (user.UserResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionUserManage) {
		return user.UserResponse{}, user.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.resolveManager(ctx, req.ManagerID); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultEmployeePassword), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashed,
		Role:         user.RoleEmployee,
		HourlyRate:   req.HourlyRate,
		ManagerID:    req.ManagerID,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(created), nil
}

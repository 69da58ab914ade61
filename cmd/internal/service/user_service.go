package service

import (
	"net/http"
	"schedulr/cmd/internal/domain/entity"
	"schedulr/cmd/internal/utils"
	"schedulr/cmd/internal/utils/apierror"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	FindByID(id int) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindAll() ([]*entity.User, error)
	Save(user *entity.User) error
	SetRoles(user *entity.User, roles []entity.Role) error
	Delete(user *entity.User) error
	FindRole(id string) (*entity.Role, error)
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=80,nospaces"`
	Password string `json:"password" validate:"required,max=128"`
	Role     string `json:"role" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	FullName string `json:"full_name" validate:"max=128"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"username" validate:"omitempty,min=2,max=80,nospaces"`
	Password string `json:"password" validate:"omitempty,max=128"`
	Role     string `json:"role"`
	Email    string `json:"email" validate:"omitempty,email"`
	FullName string `json:"full_name" validate:"max=128"`
}

type UserResponse struct {
	ID        int      `json:"id"`
	Username  string   `json:"username"`
	Email     *string  `json:"email"`
	FullName  *string  `json:"full_name"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type DefaultUserService struct {
	UserRepo  UserRepository
	Validate  *validator.Validate
	JWTSecret []byte
	TokenTTL  time.Duration
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, jwtSecret []byte, tokenTTL time.Duration) *DefaultUserService {
	return &DefaultUserService{
		UserRepo:  userRepo,
		Validate:  validate,
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
	}
}

func (u *DefaultUserService) Register(req *RegisterRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if req.Username == "" || req.Password == "" || req.Role == "" {
		return apierror.NewSimple(http.StatusBadRequest, "Username, password, and role are required.")
	}
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	role, err := u.UserRepo.FindRole(req.Role)
	if err != nil {
		log.Errorf("failed to look up role %s: %v", req.Role, err)
		return apierror.InternalServerError
	}
	if role == nil {
		return apierror.NewSimple(http.StatusBadRequest, "Unknown role: "+req.Role)
	}

	existing, err := u.UserRepo.FindByUsername(req.Username)
	if err != nil {
		log.Errorf("failed to check if user already exists: %v", err)
		return apierror.InternalServerError
	}
	if existing != nil {
		return apierror.UserAlreadyExistsError
	}

	if req.Email != "" {
		byEmail, err := u.UserRepo.FindByEmail(req.Email)
		if err != nil {
			log.Errorf("failed to check if email already exists: %v", err)
			return apierror.InternalServerError
		}
		if byEmail != nil {
			return apierror.EmailAlreadyExistsError
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return apierror.InternalServerError
	}

	now := utils.NowUTC()
	user := &entity.User{
		Username:  req.Username,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
		Roles:     []entity.Role{*role},
	}
	if req.Email != "" {
		user.Email = &req.Email
	}
	if req.FullName != "" {
		user.FullName = &req.FullName
	}

	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to create user: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (u *DefaultUserService) Login(req *LoginRequest) (*LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindByUsername(req.Username)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.InvalidCredentialsError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warnf("user %s attempted to log in with an invalid password", req.Username)
		return nil, apierror.InvalidCredentialsError
	}

	token, err := utils.IssueToken(user.ID, user.Username, u.JWTSecret, u.TokenTTL)
	if err != nil {
		log.Errorf("failed to issue token for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}
	return &LoginResponse{Token: token}, nil
}

func (u *DefaultUserService) GetUsers() ([]*UserResponse, apierror.ErrorResponse) {
	users, err := u.UserRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch all users: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*UserResponse, len(users))
	for i, user := range users {
		resp[i] = toUserResponse(user)
	}
	return resp, nil
}

func (u *DefaultUserService) GetUser(id int) (*UserResponse, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch user %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.NotFoundError
	}
	return toUserResponse(user), nil
}

func (u *DefaultUserService) UpdateUser(id int, req *UpdateUserRequest) (*UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch user %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.NotFoundError
	}

	if req.Username != "" && req.Username != user.Username {
		other, err := u.UserRepo.FindByUsername(req.Username)
		if err != nil {
			log.Errorf("failed to check username uniqueness: %v", err)
			return nil, apierror.InternalServerError
		}
		if other != nil && other.ID != user.ID {
			return nil, apierror.UserAlreadyExistsError
		}
		user.Username = req.Username
	}

	if req.Email != "" {
		other, err := u.UserRepo.FindByEmail(req.Email)
		if err != nil {
			log.Errorf("failed to check email uniqueness: %v", err)
			return nil, apierror.InternalServerError
		}
		if other != nil && other.ID != user.ID {
			return nil, apierror.EmailAlreadyExistsError
		}
		user.Email = &req.Email
	}

	if req.FullName != "" {
		user.FullName = &req.FullName
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Errorf("failed to hash password: %v", err)
			return nil, apierror.InternalServerError
		}
		user.Password = string(hash)
	}

	if req.Role != "" {
		role, err := u.UserRepo.FindRole(req.Role)
		if err != nil {
			log.Errorf("failed to look up role %s: %v", req.Role, err)
			return nil, apierror.InternalServerError
		}
		if role == nil {
			return nil, apierror.NewSimple(http.StatusBadRequest, "Unknown role: "+req.Role)
		}
		if err := u.UserRepo.SetRoles(user, []entity.Role{*role}); err != nil {
			log.Errorf("failed to update roles for user %d: %v", id, err)
			return nil, apierror.InternalServerError
		}
	}

	user.UpdatedAt = utils.NowUTC()
	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to update user %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	updated, err := u.UserRepo.FindByID(id)
	if err != nil || updated == nil {
		log.Errorf("failed to reload user %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toUserResponse(updated), nil
}

func (u *DefaultUserService) DeleteUser(id int) apierror.ErrorResponse {
	user, err := u.UserRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch user %d: %v", id, err)
		return apierror.InternalServerError
	}
	if user == nil {
		return apierror.NotFoundError
	}

	if err := u.UserRepo.Delete(user); err != nil {
		log.Errorf("failed to delete user %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func toUserResponse(user *entity.User) *UserResponse {
	roles := make([]string, len(user.Roles))
	for i, role := range user.Roles {
		roles[i] = role.ID
	}
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Roles:     roles,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
		UpdatedAt: utils.FormatEpoch(user.UpdatedAt),
	}
}

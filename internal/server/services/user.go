// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, profile lookup and the
// forgot-password flow.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/vineauth/internal/common"
	"github.com/dmitrijs2005/vineauth/internal/dbx"
	"github.com/dmitrijs2005/vineauth/internal/logging"
	"github.com/dmitrijs2005/vineauth/internal/server/auth"
	"github.com/dmitrijs2005/vineauth/internal/server/config"
	"github.com/dmitrijs2005/vineauth/internal/server/models"
	"github.com/dmitrijs2005/vineauth/internal/server/repositories/repomanager"
)

// PasswordNotifier delivers a freshly generated temporary password to the
// owner of email.
type PasswordNotifier interface {
	SendTemporaryPassword(ctx context.Context, email, password string) error
}

// RegisterInput is the registration payload after validation.
type RegisterInput struct {
	Email            string
	UserName         string
	Password         string
	Phone            string
	Address          string
	Country          string
	FullName         string
	NationalIDNumber string
	Gender           string
	DateOfBirth      string
}

// upper bound for one reset task, independent of the request that started it
const resetTaskTimeout = time.Minute

var generatePassword = common.GenerateTemporaryPassword

// ErrShuttingDown is returned for reset requests that arrive after Shutdown.
var ErrShuttingDown = errors.New("user service is shutting down")

// UserService provides authentication-related operations:
// - Register: create a user and its profile, mint a token
// - Login: verify credentials and mint a token
// - GetProfile: load the profile of an authenticated user
// - ForgotPassword: mail a temporary password and rotate the stored hash
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	hasher        auth.PasswordHasher
	notifier      PasswordNotifier
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration

	wg      sync.WaitGroup
	mu      sync.Mutex
	tasks   map[string]*ResetTask
	closing bool

	// cancelled when Shutdown gives up on running tasks
	stopped   context.Context
	stopTasks context.CancelFunc
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, n PasswordNotifier, l logging.Logger) *UserService {
	stopped, stopTasks := context.WithCancel(context.Background())
	return &UserService{
		db:            db,
		repomanager:   m,
		hasher:        auth.NewBcryptHasher(cfg.BcryptCost),
		notifier:      n,
		logger:        l.With("module", "users"),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		tasks:         make(map[string]*ResetTask),
		stopped:       stopped,
		stopTasks:     stopTasks,
	}
}

// Register creates the user and its profile in one transaction and returns an
// auth token for the new account. An email that is already taken yields
// common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	_, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, in.Email)
	if err == nil {
		return "", common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", fmt.Errorf("error searching user: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			UserName: in.UserName,
			Email:    in.Email,
			Password: hash,
		})
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}

		_, err = s.repomanager.Profiles(tx).Create(ctx, &models.Profile{
			UserID:           user.ID,
			UserName:         in.UserName,
			Email:            in.Email,
			Phone:            in.Phone,
			Address:          in.Address,
			Country:          in.Country,
			FullName:         in.FullName,
			NationalIDNumber: in.NationalIDNumber,
			Gender:           in.Gender,
			DateOfBirth:      in.DateOfBirth,
		})
		if err != nil {
			return fmt.Errorf("error creating profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return s.token(user.ID)
}

// Login verifies credentials. Unknown email and wrong password both yield
// common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, "", common.ErrorUnauthorized
	}
	if err != nil {
		return nil, "", fmt.Errorf("error searching user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		return nil, "", fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.token(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetProfile returns the profile owned by userID, or common.ErrorNotFound.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.repomanager.Profiles(s.db).GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return p, nil
}

// ForgotPassword starts a reset for the account owning email and returns
// without waiting for the mail to go out. For an unknown email the returned
// task is already finished in state ResetSkipped.
func (s *UserService) ForgotPassword(ctx context.Context, email string) (*ResetTask, error) {
	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		task := newResetTask("")
		task.finish(ResetSkipped, nil)
		s.logger.Info(ctx, "password reset skipped, unknown email", "task_id", task.ID)
		return task, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	password, err := generatePassword()
	if err != nil {
		return nil, fmt.Errorf("error generating password: %w", err)
	}

	task := newResetTask(user.ID)
	if err := s.track(task); err != nil {
		return nil, err
	}

	go s.runReset(context.WithoutCancel(ctx), task, user, password)

	return task, nil
}

// Task returns an in-flight reset task by id.
func (s *UserService) Task(id string) (*ResetTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	return t, ok
}

// Wait blocks until every in-flight reset task has finished or ctx is done.
func (s *UserService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting reset requests and waits for the running ones.
// If ctx ends first, the remaining tasks are cancelled and ctx's error is
// returned.
func (s *UserService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	s.mu.Unlock()

	err := s.Wait(ctx)
	if err != nil {
		s.stopTasks()
	}
	return err
}

func (s *UserService) track(task *ResetTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return ErrShuttingDown
	}
	s.tasks[task.ID] = task
	s.wg.Add(1)
	return nil
}

func (s *UserService) untrack(task *ResetTask) {
	s.mu.Lock()
	delete(s.tasks, task.ID)
	s.mu.Unlock()
	s.wg.Done()
}

func (s *UserService) runReset(ctx context.Context, task *ResetTask, user *models.User, password string) {
	defer s.untrack(task)

	ctx, cancel := context.WithTimeout(ctx, resetTaskTimeout)
	defer cancel()
	stop := context.AfterFunc(s.stopped, cancel)
	defer stop()

	log := s.logger.With("task_id", task.ID, "user_id", user.ID)

	if err := s.notifier.SendTemporaryPassword(ctx, user.Email, password); err != nil {
		log.Error(ctx, "password reset mail failed", "error", err)
		task.finish(ResetFailed, err)
		return
	}
	task.setState(ResetSent)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Error(ctx, "password reset hash failed", "error", err)
		task.finish(ResetFailed, fmt.Errorf("error hashing password: %w", err))
		return
	}

	if err := s.repomanager.Users(s.db).UpdatePassword(ctx, user.ID, hash); err != nil {
		log.Error(ctx, "password reset update failed", "error", err)
		task.finish(ResetFailed, fmt.Errorf("error updating password: %w", err))
		return
	}

	log.Info(ctx, "password reset completed")
	task.finish(ResetRotated, nil)
}

func (s *UserService) token(userID string) (string, error) {
	t, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return t, nil
}

package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aivista/aivista/internal/app/store/records"
	"github.com/aivista/aivista/internal/app/system/apperr"
	"github.com/aivista/aivista/internal/app/system/tenant"
	"github.com/aivista/aivista/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// User statuses.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an
	// email that already exists.
	ErrDuplicateEmail = apperr.New(apperr.Conflict, "a user with this email already exists")

	errBadRole      = apperr.New(apperr.Validation, `role must be "admin" or "client"`)
	errTenantNeeded = apperr.New(apperr.Validation, "client user must have a tenant id")
)

type Store struct {
	c *records.Collection[models.User]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.User](db, "users")}
}

// EnsureIndexes creates the unique email index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Raw().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_users_email"),
	})
	return err
}

// GetByEmail looks up a user by normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.c.FindOne(ctx, bson.M{"email": normalizeEmail(email)})
}

// List returns all users, newest first.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.c.Find(ctx, bson.M{}, opts)
}

// Create inserts a new user after normalizing & validating fields. The
// password is stored as a bcrypt hash; the caller passes it in the clear.
func (s *Store) Create(ctx context.Context, u models.User, password string) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Email = normalizeEmail(u.Email)
	u.Name = strings.TrimSpace(u.Name)
	if u.Role == "" {
		u.Role = tenant.RoleClient
	}
	if u.Status == "" {
		u.Status = StatusActive
	}

	switch u.Role {
	case tenant.RoleAdmin:
		u.ClientID = ""
	case tenant.RoleClient:
		if u.ClientID == "" {
			return models.User{}, errTenantNeeded
		}
	default:
		return models.User{}, errBadRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return models.User{}, apperr.Wrap(apperr.Storage, "password hash failed", err)
	}
	u.Password = string(hash)

	u.CreatedAt = time.Now().UTC()
	u.LastLogin = nil

	if _, err := s.c.Insert(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, apperr.Wrap(apperr.Storage, "insert failed", err)
	}
	return u, nil
}

// VerifyPassword checks a candidate password against the stored credential.
// Hashes are compared with bcrypt; records predating the hash migration hold
// the password verbatim and are compared directly. The caller logs legacy
// matches so those accounts can be re-hashed.
func VerifyPassword(u *models.User, password string) (ok bool, legacy bool) {
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err == nil {
		return true, false
	}
	if !strings.HasPrefix(u.Password, "$2") && u.Password == password {
		return true, true
	}
	return false, false
}

// TouchLastLogin stamps last_login with the current time.
func (s *Store) TouchLastLogin(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, nil, bson.M{"last_login": time.Now().UTC()})
	return err
}

// IsNotFound reports whether err means the user does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments) || apperr.KindOf(err) == apperr.NotFound
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

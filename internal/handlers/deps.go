package handlers

import (
	"context"
	"io"
	"time"

	"github.com/arzan03/musicland/internal/middleware"
	"github.com/arzan03/musicland/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserStore reads and writes user documents.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (models.InsertResult, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

// ClassStore reads and writes class documents.
type ClassStore interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) (models.InsertResult, error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (models.UpdateResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error)
	SetImage(ctx context.Context, id primitive.ObjectID, url string) (models.UpdateResult, error)
	Update(ctx context.Context, id primitive.ObjectID, u models.ClassUpdate) (models.UpdateResult, error)
	Upsert(ctx context.Context, id primitive.ObjectID, u models.ClassUpdate) (models.UpdateResult, error)
}

// CartStore reads and writes cart items and the payments recorded on them.
type CartStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	ListPaid(ctx context.Context, email string) ([]models.CartItem, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error)
	Add(ctx context.Context, item *models.CartItem) (models.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
	RecordPayment(ctx context.Context, id primitive.ObjectID, payment models.Payment) (models.UpdateResult, error)
}

// ImageUploader stores class cover images and returns their public URL.
type ImageUploader interface {
	UploadClassImage(ctx context.Context, classID primitive.ObjectID, filename, contentType string, r io.Reader, size int64) (string, error)
}

// PaymentIntents creates card payment intents with the payment processor.
type PaymentIntents interface {
	CreateIntent(ctx context.Context, price float64, idempotencyKey string) (string, error)
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	GenerateJWT(email, role string) (string, error)
}

// IdentityVerifier checks a sign-in provider ID token and returns the email
// it was issued for.
type IdentityVerifier interface {
	VerifyIdentity(idToken string) (string, error)
}

// Deps are the collaborators of the HTTP handlers. Payments, Images and
// Tokens are optional; routes that need a missing one answer 503. Without
// Identity, issued access tokens never carry a role.
type Deps struct {
	Users    UserStore
	Classes  ClassStore
	Carts    CartStore
	Payments PaymentIntents
	Images   ImageUploader
	Tokens   TokenIssuer
	Identity IdentityVerifier
	Auth     *middleware.Authorizer
	Timeout  time.Duration
	Log      *zap.Logger
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

type stubCustomerRepo struct {
	customers map[string]*domain.Customer
	nextID    int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCustomerRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, c := range r.customers {
		if c.Email == email || c.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCustomerRepo) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return cloneCustomer(c), nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return cloneCustomer(c), nil
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.nextID++
	copy := cloneCustomer(c)
	copy.ID = fmt.Sprintf("cust_%d", r.nextID)
	r.customers[copy.ID] = cloneCustomer(copy)
	return copy, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	r.customers[c.ID] = cloneCustomer(c)
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *stubCustomerRepo) FindAll(_ context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, cloneCustomer(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type stubUploader struct {
	url     string
	err     error
	uploads int
}

func (u *stubUploader) Upload(_ context.Context, folder string, img ports.ImageUpload) (string, error) {
	u.uploads++
	if u.err != nil {
		return "", u.err
	}
	return u.url + "/" + folder + "/" + img.Filename, nil
}

func newCustomerService(repo ports.CustomerRepository, up ports.ImageUploader) *CustomerService {
	tokens := NewTokenService("secret", time.Hour)
	return NewCustomerService(repo, tokens, up, nil, zerolog.Nop())
}

func TestCustomerService_Register_Success(t *testing.T) {
	svc := newCustomerService(newStubCustomerRepo(), &stubUploader{})

	customer, err := svc.Register(context.Background(), "alice@example.com", "alice", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if customer.ID == "" {
		t.Fatalf("expected generated id")
	}
	if customer.PasswordHash == "pass123" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if customer.IsAdmin {
		t.Fatalf("register must never create admin accounts")
	}
	if customer.Image != "" {
		t.Fatalf("new account should have no image, got %q", customer.Image)
	}
}

func TestCustomerService_Register_MissingFields(t *testing.T) {
	svc := newCustomerService(newStubCustomerRepo(), &stubUploader{})

	for _, tc := range [][3]string{
		{"", "alice", "pass"},
		{"alice@example.com", "", "pass"},
		{"alice@example.com", "alice", ""},
	} {
		if _, err := svc.Register(context.Background(), tc[0], tc[1], tc[2]); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Register(%q,%q,%q): expected ErrValidation, got %v", tc[0], tc[1], tc[2], err)
		}
	}
}

func TestCustomerService_Register_Duplicate(t *testing.T) {
	svc := newCustomerService(newStubCustomerRepo(), &stubUploader{})

	if _, err := svc.Register(context.Background(), "bob@example.com", "bob", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Same email, different username.
	if _, err := svc.Register(context.Background(), "bob@example.com", "robert", "pass"); !errors.Is(err, domain.ErrCustomerExists) {
		t.Fatalf("expected ErrCustomerExists for duplicate email, got %v", err)
	}
	// Same username, different email.
	if _, err := svc.Register(context.Background(), "robert@example.com", "bob", "pass"); !errors.Is(err, domain.ErrCustomerExists) {
		t.Fatalf("expected ErrCustomerExists for duplicate username, got %v", err)
	}
}

func TestCustomerService_Login_Success(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo, &stubUploader{})

	if _, err := svc.Register(context.Background(), "carol@example.com", "carol", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	customer, token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if customer.Username != "carol" {
		t.Fatalf("unexpected customer: %+v", customer)
	}

	claims, err := svc.tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.CustomerID != customer.ID || claims.Email != "carol@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestCustomerService_Login_UniformError(t *testing.T) {
	svc := newCustomerService(newStubCustomerRepo(), &stubUploader{})

	if _, err := svc.Register(context.Background(), "dave@example.com", "dave", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, unknownEmail := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	// Identical message: account existence must not be inferable.
	if wrongPass.Error() != unknownEmail.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPass.Error(), unknownEmail.Error())
	}
}

func TestCustomerService_Update_Partial(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo, &stubUploader{url: "https://blobs.example.com"})

	created, err := svc.Register(context.Background(), "erin@example.com", "erin", "oldpass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	oldHash := created.PasswordHash

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateCustomerInput{
		Phone:    "555-0101",
		Password: "newpass",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Phone != "555-0101" {
		t.Fatalf("phone not updated: %q", updated.Phone)
	}
	if updated.Email != "erin@example.com" || updated.Username != "erin" {
		t.Fatalf("omitted fields must keep stored values: %+v", updated)
	}
	if updated.PasswordHash == oldHash {
		t.Fatalf("password not re-hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}

func TestCustomerService_Update_ImageReplaced(t *testing.T) {
	repo := newStubCustomerRepo()
	up := &stubUploader{url: "https://blobs.example.com"}
	svc := newCustomerService(repo, up)

	created, _ := svc.Register(context.Background(), "frank@example.com", "frank", "pass")

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateCustomerInput{
		Image: &ports.ImageUpload{Filename: "avatar.png", ContentType: "image/png", Data: []byte{1}},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Image != "https://blobs.example.com/customer_profiles/avatar.png" {
		t.Fatalf("unexpected image url: %q", updated.Image)
	}
	if up.uploads != 1 {
		t.Fatalf("expected one upload, got %d", up.uploads)
	}
}

func TestCustomerService_Update_UploadFailureAborts(t *testing.T) {
	repo := newStubCustomerRepo()
	up := &stubUploader{err: errors.New("blob store down")}
	svc := newCustomerService(repo, up)

	created, _ := svc.Register(context.Background(), "gus@example.com", "gus", "pass")

	_, err := svc.Update(context.Background(), created.ID, ports.UpdateCustomerInput{
		Phone: "555-0102",
		Image: &ports.ImageUpload{Filename: "a.png", ContentType: "image/png", Data: []byte{1}},
	})
	if err == nil {
		t.Fatalf("expected error when upload fails")
	}

	// Nothing may have been persisted.
	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Phone != "" {
		t.Fatalf("partial update persisted after upload failure: %+v", stored)
	}
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	svc := newCustomerService(newStubCustomerRepo(), &stubUploader{})

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateCustomerInput{Phone: "x"}); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerService_Delete(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo, &stubUploader{})

	created, _ := svc.Register(context.Background(), "hana@example.com", "hana", "pass")
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound on repeat delete, got %v", err)
	}
}

func TestCustomerService_ListAll_AdminGated(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo, &stubUploader{})

	_, _ = svc.Register(context.Background(), "ivy@example.com", "ivy", "pass")

	if _, err := svc.ListAll(context.Background(), false); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}

	list, err := svc.ListAll(context.Background(), true)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(list))
	}
}

func TestCustomerService_EnsureAdmin(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo, &stubUploader{})

	if err := svc.EnsureAdmin(context.Background(), "root@example.com", "root", "rootpass"); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}

	admin, err := repo.FindByEmail(context.Background(), "root@example.com")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatalf("seeded account is not admin")
	}

	// Second call is a no-op.
	if err := svc.EnsureAdmin(context.Background(), "root@example.com", "root", "otherpass"); err != nil {
		t.Fatalf("repeat EnsureAdmin returned error: %v", err)
	}
	if len(repo.customers) != 1 {
		t.Fatalf("expected 1 account, got %d", len(repo.customers))
	}
}

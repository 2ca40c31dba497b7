package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/pkg/auth"
)

type fakeUsers struct {
	users     []*models.User
	existsErr error
}

func (f *fakeUsers) EmailExists(_ context.Context, email string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	user.ID = int64(len(f.users) + 1)
	f.users = append(f.users, user)
	return nil
}

func TestCreateDefaultData(t *testing.T) {
	auth.BcryptCost = 4
	users := &fakeUsers{}
	admin := AdminAccount{Email: " Admin@LearnHub.local ", Password: "s3cret-pass"}

	if err := CreateDefaultData(context.Background(), users, admin, zerolog.Nop()); err != nil {
		t.Fatalf("CreateDefaultData: %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("expected one admin, got %d", len(users.users))
	}
	created := users.users[0]
	if created.RoleType != models.RoleAdmin || created.Email != "admin@learnhub.local" {
		t.Errorf("unexpected admin %+v", created)
	}
	if !auth.CheckPassword(created.Password, "s3cret-pass") {
		t.Errorf("admin password should be hashed")
	}

	// second run is a no-op
	if err := CreateDefaultData(context.Background(), users, admin, zerolog.Nop()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(users.users) != 1 {
		t.Errorf("admin created twice")
	}
}

func TestCreateDefaultDataSkipsWithoutPassword(t *testing.T) {
	users := &fakeUsers{existsErr: errors.New("must not be called")}

	if err := CreateDefaultData(context.Background(), users, AdminAccount{Email: "admin@learnhub.local"}, zerolog.Nop()); err != nil {
		t.Fatalf("expected skip, got %v", err)
	}
	if len(users.users) != 0 {
		t.Errorf("no user should be created")
	}
}

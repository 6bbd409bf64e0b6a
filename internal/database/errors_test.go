package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestClassify(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		if classify("op", nil) != nil {
			t.Error("Expected nil for nil error")
		}
	})

	t.Run("NoRows", func(t *testing.T) {
		err := classify("users.get", sql.ErrNoRows)
		if err.Kind != KindNotFound {
			t.Errorf("Expected KindNotFound, got %s", err.Kind)
		}
	})

	t.Run("ForeignKeyViolation", func(t *testing.T) {
		src := &mysql.MySQLError{Number: 1452, Message: "a foreign key constraint fails"}
		err := classify("booking.add", src)
		if err.Kind != KindIntegrity {
			t.Errorf("Expected KindIntegrity, got %s", err.Kind)
		}
	})

	t.Run("RowReferenced", func(t *testing.T) {
		src := &mysql.MySQLError{Number: 1451, Message: "a foreign key constraint fails"}
		err := classify("users.delete", src)
		if err.Kind != KindIntegrity {
			t.Errorf("Expected KindIntegrity, got %s", err.Kind)
		}
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		src := &mysql.MySQLError{Number: 1062, Message: "duplicate entry"}
		err := classify("users.add", src)
		if err.Kind != KindIntegrity {
			t.Errorf("Expected KindIntegrity, got %s", err.Kind)
		}
	})

	t.Run("OtherDriverError", func(t *testing.T) {
		src := &mysql.MySQLError{Number: 1146, Message: "table doesn't exist"}
		err := classify("users.add", src)
		if err.Kind != KindStorage {
			t.Errorf("Expected KindStorage, got %s", err.Kind)
		}
	})

	t.Run("WrappedDriverError", func(t *testing.T) {
		src := fmt.Errorf("exec failed: %w", &mysql.MySQLError{Number: 1452})
		err := classify("payment.add", src)
		if err.Kind != KindIntegrity {
			t.Errorf("Expected KindIntegrity through wrapping, got %s", err.Kind)
		}
	})
}

func TestErrorHelpers(t *testing.T) {
	notFound := newError(KindNotFound, "users.update", sql.ErrNoRows)
	integrity := newError(KindIntegrity, "booking.add", errors.New("users 7 does not exist"))
	storage := newError(KindStorage, "users.get_all", errors.New("connection refused"))

	t.Run("IsNotFound", func(t *testing.T) {
		if !IsNotFound(notFound) {
			t.Error("Expected IsNotFound true")
		}
		if IsNotFound(integrity) || IsNotFound(storage) {
			t.Error("Expected IsNotFound false for other kinds")
		}
		if IsNotFound(errors.New("plain")) {
			t.Error("Expected IsNotFound false for unclassified error")
		}
	})

	t.Run("IsIntegrity", func(t *testing.T) {
		if !IsIntegrity(integrity) {
			t.Error("Expected IsIntegrity true")
		}
		if IsIntegrity(notFound) || IsIntegrity(storage) {
			t.Error("Expected IsIntegrity false for other kinds")
		}
	})

	t.Run("ErrKind", func(t *testing.T) {
		if ErrKind(notFound) != KindNotFound {
			t.Error("Expected KindNotFound")
		}
		if ErrKind(errors.New("plain")) != KindStorage {
			t.Error("Expected KindStorage fallback for unclassified error")
		}
	})

	t.Run("Wrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", integrity)
		if !IsIntegrity(wrapped) {
			t.Error("Expected IsIntegrity to see through wrapping")
		}
	})

	t.Run("Unwrap", func(t *testing.T) {
		if !errors.Is(notFound, sql.ErrNoRows) {
			t.Error("Expected errors.Is to reach the wrapped cause")
		}
	})
}

func TestErrorString(t *testing.T) {
	err := newError(KindIntegrity, "booking.add", errors.New("users 7 does not exist"))
	want := "booking.add: integrity: users 7 does not exist"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}

	bare := newError(KindNotFound, "users.delete", nil)
	if bare.Error() != "users.delete: not_found" {
		t.Errorf("Unexpected bare error string %q", bare.Error())
	}
}

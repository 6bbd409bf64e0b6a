package cmd

import (
	"reflect"
	"testing"
)

func TestTruncateOrder(t *testing.T) {
	t.Run("DefaultAllChildFirst", func(t *testing.T) {
		got, err := truncateOrder(nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := []string{"payment", "booking", "facility", "users"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("SubsetReordered", func(t *testing.T) {
		got, err := truncateOrder([]string{"users", "payment"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := []string{"payment", "users"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("UnknownTable", func(t *testing.T) {
		if _, err := truncateOrder([]string{"customers"}); err == nil {
			t.Error("Expected error for unknown table")
		}
	})
}

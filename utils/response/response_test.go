package response

import "testing"

func TestNewEnvelopeHasMore(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		offset  int
		limit   int
		hasMore bool
	}{
		{"empty result set", 0, 0, 20, false},
		{"single partial page", 5, 0, 20, false},
		{"exactly one page", 20, 0, 20, false},
		{"one row past the page", 21, 0, 20, true},
		{"middle page", 100, 20, 20, true},
		{"last full page", 100, 80, 20, false},
		{"offset past the end", 10, 40, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvelope(nil, tt.total, tt.offset, tt.limit)
			if env.Pagination.HasMore != tt.hasMore {
				t.Errorf("hasMore = %v, want %v (total=%d offset=%d limit=%d)",
					env.Pagination.HasMore, tt.hasMore, tt.total, tt.offset, tt.limit)
			}
		})
	}
}

func TestNewEnvelopeEchoesWindow(t *testing.T) {
	rows := []string{"a", "b"}
	env := NewEnvelope(rows, 42, 20, 10)

	if env.Pagination.Total != 42 {
		t.Errorf("total = %d, want 42", env.Pagination.Total)
	}
	if env.Pagination.Offset != 20 || env.Pagination.Limit != 10 {
		t.Errorf("window = %d/%d, want 20/10", env.Pagination.Offset, env.Pagination.Limit)
	}
	got, ok := env.Data.([]string)
	if !ok || len(got) != 2 {
		t.Errorf("data not passed through: %v", env.Data)
	}
}

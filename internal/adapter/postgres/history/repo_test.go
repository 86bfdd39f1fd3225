package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/inspoet/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func sampleRecord() domain.HistoryRecord {
	return domain.HistoryRecord{
		ID:             uuid.New(),
		Author:         "Frost",
		Title:          "Something about moon",
		Lines:          []string{"There once was a bright moon,", "who gleams by the june."},
		GrammarScore:   2,
		SentimentScore: 0.4,
		CreatedAt:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRepo_Append(t *testing.T) {
	rec := sampleRecord()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "inserted",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO limericks`).
					WithArgs(rec.ID, rec.Author, rec.Title, rec.Lines, rec.GrammarScore, rec.SentimentScore, rec.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "duplicate id",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO limericks`).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: domain.ErrAlreadyExists,
		},
		{
			name: "check violation",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO limericks`).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: "23514"})
			},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			err := New(mock).Append(context.Background(), rec)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Append() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Append() error = %v, want %v", err, tt.wantErr)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestRepo_List(t *testing.T) {
	first, second := sampleRecord(), sampleRecord()
	second.Title = "Something about sea"
	second.CreatedAt = second.CreatedAt.Add(time.Minute)

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		want    []domain.HistoryRecord
		wantErr bool
	}{
		{
			name: "records in order",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(columns)
				for _, r := range []domain.HistoryRecord{first, second} {
					rows.AddRow(r.ID, r.Author, r.Title, r.Lines, r.GrammarScore, r.SentimentScore, r.CreatedAt)
				}
				mock.ExpectQuery(`SELECT .+ FROM limericks ORDER BY seq`).WillReturnRows(rows)
			},
			want: []domain.HistoryRecord{first, second},
		},
		{
			name: "empty",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).WillReturnRows(pgxmock.NewRows(columns))
			},
			want: []domain.HistoryRecord{},
		},
		{
			name: "query error",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			got, err := New(mock).List(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("List() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				if got == nil {
					t.Fatal("List() returned nil slice")
				}
				if len(got) != len(tt.want) {
					t.Fatalf("List() len = %d, want %d", len(got), len(tt.want))
				}
				for i := range got {
					if got[i].ID != tt.want[i].ID || got[i].Title != tt.want[i].Title {
						t.Errorf("List()[%d] = %+v, want %+v", i, got[i], tt.want[i])
					}
					if !got[i].CreatedAt.Equal(tt.want[i].CreatedAt) {
						t.Errorf("List()[%d].CreatedAt = %v, want %v", i, got[i].CreatedAt, tt.want[i].CreatedAt)
					}
				}
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestRepo_Ping(t *testing.T) {
	mock := newMock(t)
	mock.ExpectPing()

	if err := New(mock).Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

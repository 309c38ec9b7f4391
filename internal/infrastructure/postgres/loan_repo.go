package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianbank/lending/internal/domain/model"
	"github.com/meridianbank/lending/internal/domain/port"
	"github.com/meridianbank/lending/internal/domain/valueobject"
	"github.com/meridianbank/lending/pkg/money"
	pgdb "github.com/meridianbank/lending/pkg/postgres"
)

// ErrVersionConflict is returned when a concurrent writer updated the loan
// between read and save.
var ErrVersionConflict = errors.New("optimistic locking conflict on loan")

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Save persists a loan together with its schedule and payments in one
// transaction. The version check rejects concurrent updates to the same loan,
// so two payments racing on one loan cannot both commit against the same
// starting state.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	return pgdb.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		loanQuery := `
			INSERT INTO loans (
				id, borrower_id, principal, currency, term_count,
				status, outstanding, processing_date,
				version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
			ON CONFLICT (id) DO UPDATE SET
				status      = EXCLUDED.status,
				outstanding = EXCLUDED.outstanding,
				version     = loans.version + 1,
				updated_at  = EXCLUDED.updated_at
			WHERE loans.version = $9
		`
		tag, err := tx.Exec(ctx, loanQuery,
			loan.ID(), loan.BorrowerID(), loan.Principal().Amount(), loan.Currency().Code(),
			loan.TermCount(), loan.Status().String(), loan.Outstanding().Amount(),
			loan.ProcessingDate(), loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save loan: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrVersionConflict
		}

		for _, inst := range loan.Installments() {
			instQuery := `
				INSERT INTO installments (loan_id, seq, due_date, amount, outstanding, status)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (loan_id, seq) DO UPDATE SET
					outstanding = EXCLUDED.outstanding,
					status      = EXCLUDED.status
			`
			_, err := tx.Exec(ctx, instQuery,
				loan.ID(), inst.Sequence, inst.DueDate,
				inst.Amount.Amount(), inst.Outstanding.Amount(), inst.Status.String(),
			)
			if err != nil {
				return fmt.Errorf("save installment %d: %w", inst.Sequence, err)
			}
		}

		// Payments are append-only; replays are ignored.
		for _, p := range loan.Payments() {
			payQuery := `
				INSERT INTO payments (id, loan_id, amount, currency, received_at, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (id) DO NOTHING
			`
			_, err := tx.Exec(ctx, payQuery,
				p.ID, loan.ID(), p.Amount.Amount(), p.Amount.Currency().Code(),
				p.ReceivedAt, p.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("save payment %s: %w", p.ID, err)
			}
		}

		return nil
	})
}

// FindByID retrieves a loan with its schedule and payment history.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	query := `
		SELECT id, borrower_id, principal, currency, term_count,
		       status, outstanding, processing_date,
		       version, created_at, updated_at
		FROM loans
		WHERE id = $1
	`
	row, err := scanLoanRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.Loan{}, err
	}
	return r.hydrate(ctx, row)
}

// FindByBorrowerID retrieves all loans for a borrower, newest first.
func (r *LoanRepo) FindByBorrowerID(ctx context.Context, borrowerID string) ([]model.Loan, error) {
	query := `
		SELECT id, borrower_id, principal, currency, term_count,
		       status, outstanding, processing_date,
		       version, created_at, updated_at
		FROM loans
		WHERE borrower_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loanRows []loanRow
	for rows.Next() {
		lr, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loanRows = append(loanRows, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loans: %w", err)
	}

	loans := make([]model.Loan, 0, len(loanRows))
	for _, lr := range loanRows {
		loan, err := r.hydrate(ctx, lr)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, nil
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

// loanRow is the flat relational shape of a loan before hydration.
type loanRow struct {
	id, borrowerID       string
	principal            int64
	currency             string
	termCount            int
	status               valueobject.LoanStatus
	outstanding          int64
	processingDate       time.Time
	version              int
	createdAt, updatedAt time.Time
}

func scanLoanRow(s scannable) (loanRow, error) {
	var (
		lr        loanRow
		statusStr string
	)
	err := s.Scan(
		&lr.id, &lr.borrowerID, &lr.principal, &lr.currency, &lr.termCount,
		&statusStr, &lr.outstanding, &lr.processingDate,
		&lr.version, &lr.createdAt, &lr.updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return loanRow{}, port.ErrLoanNotFound
	}
	if err != nil {
		return loanRow{}, fmt.Errorf("scan loan: %w", err)
	}

	lr.status, err = valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return loanRow{}, fmt.Errorf("parse loan status: %w", err)
	}
	return lr, nil
}

func (r *LoanRepo) hydrate(ctx context.Context, lr loanRow) (model.Loan, error) {
	currency, err := money.NewCurrency(lr.currency)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan currency: %w", err)
	}

	installments, err := r.loadInstallments(ctx, lr.id, currency)
	if err != nil {
		return model.Loan{}, err
	}
	payments, err := r.loadPayments(ctx, lr.id)
	if err != nil {
		return model.Loan{}, err
	}

	return model.ReconstructLoan(
		lr.id, lr.borrowerID,
		money.New(lr.principal, currency),
		lr.termCount,
		lr.status,
		installments,
		payments,
		money.New(lr.outstanding, currency),
		lr.processingDate,
		lr.version, lr.createdAt, lr.updatedAt,
	), nil
}

func (r *LoanRepo) loadInstallments(ctx context.Context, loanID string, currency money.Currency) ([]model.Installment, error) {
	query := `
		SELECT seq, due_date, amount, outstanding, status
		FROM installments
		WHERE loan_id = $1
		ORDER BY seq
	`
	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query installments: %w", err)
	}
	defer rows.Close()

	var installments []model.Installment
	for rows.Next() {
		var (
			seq                 int
			dueDate             time.Time
			amount, outstanding int64
			statusStr           string
		)
		if err := rows.Scan(&seq, &dueDate, &amount, &outstanding, &statusStr); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		status, err := valueobject.NewInstallmentStatus(statusStr)
		if err != nil {
			return nil, fmt.Errorf("parse installment status: %w", err)
		}
		installments = append(installments, model.Installment{
			Sequence:    seq,
			DueDate:     dueDate,
			Amount:      money.New(amount, currency),
			Outstanding: money.New(outstanding, currency),
			Status:      status,
		})
	}
	return installments, rows.Err()
}

func (r *LoanRepo) loadPayments(ctx context.Context, loanID string) ([]model.Payment, error) {
	query := `
		SELECT id, amount, currency, received_at, created_at
		FROM payments
		WHERE loan_id = $1
		ORDER BY received_at, created_at
	`
	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var (
			id, currencyCode      string
			amount                int64
			receivedAt, createdAt time.Time
		)
		if err := rows.Scan(&id, &amount, &currencyCode, &receivedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		currency, err := money.NewCurrency(currencyCode)
		if err != nil {
			return nil, fmt.Errorf("parse payment currency: %w", err)
		}
		payments = append(payments, model.Payment{
			ID:         id,
			Amount:     money.New(amount, currency),
			ReceivedAt: receivedAt,
			CreatedAt:  createdAt,
		})
	}
	return payments, rows.Err()
}

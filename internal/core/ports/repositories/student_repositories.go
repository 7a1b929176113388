package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schoolfin/school_finance_app/internal/core/domain"
)

// StudentReader defines read operations for student data
type StudentReader interface {
	// FindStudentByID retrieves a student by ID.
	FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error)

	// ListCurrentStudents retrieves students belonging to the live period
	// (fiscal year tag null or empty).
	ListCurrentStudents(ctx context.Context) ([]domain.Student, error)

	// ListStudentsByYear retrieves students tagged with an archived year label.
	ListStudentsByYear(ctx context.Context, year string) ([]domain.Student, error)
}

// StudentWriter defines write operations for student data
type StudentWriter interface {
	// SaveStudent persists a new student, untagged (current period).
	SaveStudent(ctx context.Context, student domain.Student) error

	// PromoteAllStudents advances every parsable grade and rolls balances,
	// in its own transaction. Returns the number of students promoted.
	PromoteAllStudents(ctx context.Context, updatedBy string, now time.Time) (int, error)
}

// StudentTxCollaborator defines student operations that participate in a
// caller-owned transaction, used by the year-close and payment flows.
type StudentTxCollaborator interface {
	// PromoteStudentsInTx runs grade promotion over the full roster inside tx.
	PromoteStudentsInTx(ctx context.Context, tx pgx.Tx, updatedBy string, now time.Time) (int, error)

	// FindStudentByIDForUpdate retrieves a student and locks the row.
	// Must be called within a transaction.
	FindStudentByIDForUpdate(ctx context.Context, tx pgx.Tx, studentID string) (*domain.Student, error)

	// UpdateStudentBalancesInTx persists paid/remaining/debt and grade fields inside tx.
	UpdateStudentBalancesInTx(ctx context.Context, tx pgx.Tx, student domain.Student, updatedBy string, now time.Time) error
}

// StudentRepositoryFacade combines all student-related repository interfaces
type StudentRepositoryFacade interface {
	StudentReader
	StudentWriter
	StudentTxCollaborator
}

// StudentRepositoryWithTx extends StudentRepositoryFacade with transaction capabilities
type StudentRepositoryWithTx interface {
	StudentRepositoryFacade
	TransactionManager
}

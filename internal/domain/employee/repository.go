package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int) (Employee, error)
	GetByUsername(ctx context.Context, username string) (Employee, error)
}

package medicines

import "context"

type Repository interface {
	// Create asigna identidad y devuelve la entidad persistida.
	Create(ctx context.Context, m Medicine) (Medicine, error)
	GetByID(ctx context.Context, id int64) (Medicine, error)
	List(ctx context.Context) ([]Medicine, error)
	// Delete es idempotente: borrar un id inexistente no es error.
	Delete(ctx context.Context, id int64) error
}

package repository

import (
	"fmt"

	"github.com/disasterconnect/disaster_coordination_system/internal/service"
)

// storeError помечает ошибку драйвера как недоступность хранилища,
// чтобы вызывающий мог отличить ее от NotFound через errors.Is
// и предложить повтор операции
func storeError(err error) error {
	return fmt.Errorf("%w: %v", service.ErrStoreUnavailable, err)
}

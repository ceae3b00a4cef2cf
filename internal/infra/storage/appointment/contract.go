package appointment

import (
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

// Переиспользуем интерфейс executor из txmanager для работы с БД
// Поддерживает *sql.DB и *sql.Tx (через контекст транзакции)
type DBExecutor = txmanager.Executor

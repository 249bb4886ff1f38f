package dining

import "github.com/m04kA/hotel-booking-service/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor

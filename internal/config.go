package internal

import "time"

type Config struct {
	OperatorID      int64         `env:"OPERATOR_ID,required=true"`
	StoreFilepath   string        `env:"STORE_FILEPATH,required=true"`
	Port            int           `env:"PORT,required=true"`
	GatewayURL      string        `env:"GATEWAY_URL,required=true"`
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT,required=true"`
	SelectionLimit  int           `env:"SELECTION_LIMIT,required=true"`
	ChunkLimit      int           `env:"CHUNK_LIMIT,required=true"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
}

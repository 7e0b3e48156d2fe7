// internal/common/camunda/client.go
package camunda

import (
	"fmt"
	"time"

	"nexo-workers/internal/common/config"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.uber.org/zap"
)

// Connect creates the Zeebe gRPC client, retrying with exponential
// backoff so the worker manager survives broker restarts at boot.
func Connect(cfg config.CamundaConfig, maxRetries int, log *zap.Logger) (zbc.Client, error) {
	var client zbc.Client
	var err error
	delay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		client, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.BrokerAddress,
			UsePlaintextConnection: true,
		})
		if err == nil {
			return client, nil
		}

		if i < maxRetries-1 {
			log.Warn("zeebe connection failed, retrying...",
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return nil, fmt.Errorf("zeebe connection failed after %d attempts: %w", maxRetries, err)
}

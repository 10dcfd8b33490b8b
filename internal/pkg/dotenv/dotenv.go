package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает .env (если он есть) и применяет флаги командной строки,
// которые перекрывают переменные окружения. В контейнере .env обычно нет.
func Load(files ...string) error {
	if err := LoadEnv(files...); err != nil {
		return err
	}

	var portFlag, grpcPortFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&grpcPortFlag, "grpc-port", "", "gRPC health port (overrides GRPC_PORT environment variable)")
	flag.Parse()

	overrides := map[string]string{
		"PORT":      portFlag,
		"GRPC_PORT": grpcPortFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}

// LoadEnv только .env, без разбора флагов. Для утилит со своим парсером
// аргументов (cobra).
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

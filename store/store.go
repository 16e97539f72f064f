// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package store is the relational data layer of the CMS. It opens
// connections for every supported driver and exposes one small
// repository per table.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"strconv"
	"sync"

	_ "github.com/denisenkom/go-mssqldb"
	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	go_ora "github.com/sijms/go-ora/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/ssh"

	"github.com/lygwys/cms/common/constants"
	"github.com/lygwys/cms/config"
	"github.com/lygwys/cms/logger"
)

const sshDialNetwork = "mysql+ssh"

var registerTunnel sync.Mutex

// Open returns a pinged connection pool for cfg.
func Open(ctx context.Context, cfg config.Database) (*sql.DB, error) {
	dsn, err := DataSourceName(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.SSH != nil {
		if cfg.Driver != constants.MYSQL {
			return nil, fmt.Errorf("ssh tunnel is only supported for %s, got '%s'", constants.MYSQL, cfg.Driver)
		}
		if err := dialThroughSSH(cfg.SSH); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open(driverName(cfg.Driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", cfg.Driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database %s: %w", cfg.Driver, cfg.Database, err)
	}
	logger.Log.Info("connected to database", zap.String("driver", cfg.Driver), zap.String("host", cfg.Host), zap.String("db", cfg.Database))
	return db, nil
}

// DataSourceName builds the driver specific connection string for cfg.
func DataSourceName(cfg config.Database) (string, error) {
	switch cfg.Driver {
	case constants.MYSQL:
		network := "tcp"
		if cfg.SSH != nil {
			network = sshDialNetwork
		}
		return fmt.Sprintf("%s:%s@%s(%s:%s)/%s?parseTime=true", cfg.User, cfg.Password, network, cfg.Host, cfg.Port, cfg.Database), nil
	case constants.POSTGRES:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database), nil
	case constants.SQLSERVER:
		return fmt.Sprintf(`sqlserver://%s:%s@%s:%s?database=%s`, cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database), nil
	case constants.ORACLE:
		portNumber, err := strconv.Atoi(cfg.Port)
		if err != nil {
			return "", fmt.Errorf("invalid oracle port %q: %w", cfg.Port, err)
		}
		return go_ora.BuildUrl(cfg.Host, portNumber, cfg.Database, cfg.User, cfg.Password, nil), nil
	default:
		return "", fmt.Errorf("driver '%s' is not supported", cfg.Driver)
	}
}

func driverName(driver string) string {
	switch driver {
	case constants.ORACLE:
		return "oracle"
	default:
		return driver
	}
}

// dialThroughSSH makes the mysql driver reach the database host through an
// SSH bastion. The registration is process wide.
func dialThroughSSH(t *config.SSHTunnel) error {
	key, err := os.ReadFile(t.KeyPath)
	if err != nil {
		return fmt.Errorf("failed to read ssh private key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return fmt.Errorf("failed to parse ssh private key: %w", err)
	}
	sshConfig := &ssh.ClientConfig{
		User:            t.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}
	client, err := ssh.Dial("tcp", net.JoinHostPort(t.Host, strconv.Itoa(t.Port)), sshConfig)
	if err != nil {
		return fmt.Errorf("failed to dial ssh host %s: %w", t.Host, err)
	}
	registerTunnel.Lock()
	defer registerTunnel.Unlock()
	mysql.RegisterDialContext(sshDialNetwork, func(ctx context.Context, addr string) (net.Conn, error) {
		return client.Dial("tcp", addr)
	})
	logger.Log.Info("ssh tunnel established", zap.String("bastion", t.Host))
	return nil
}

// TableExists reports whether the connected database has a table called name.
func TableExists(ctx context.Context, db *sql.DB, driver, name string) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, Dialect{Driver: driver}.TableExists(), name).Scan(&n); err != nil {
		return false, fmt.Errorf("can't look up table %s: %w", name, err)
	}
	return n > 0, nil
}

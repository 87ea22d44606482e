// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger emits audit events on a dedicated logger.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system started", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutting down", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.l.Info(
		"authorization failure",
		zap.String("event", "authz_fail"),
		zap.String("subject", subject),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(actor, action, resource, target string) {
	s.l.Info(
		"administrative action",
		zap.String("event", "admin_action"),
		zap.String("actor", actor),
		zap.String("action", action),
		zap.String("resource", resource),
		zap.String("target", target),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{
		l: l.Named("security"),
	}
}

package compat

import (
	"runtime"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Проверки совместимости перед выдачей кода.
// Пустое требование означает "любая версия подходит"

// HostCompatible сравнивает версию хост-платформы с минимально требуемой
func HostCompatible(current string, required string) bool {
	return atLeast(current, required)
}

// RuntimeCompatible сравнивает версию Go с минимально требуемой
func RuntimeCompatible(required string) bool {
	current := strings.TrimPrefix(runtime.Version(), "go")
	return atLeast(current, required)
}

func atLeast(current string, required string) bool {
	if required == "" {
		return true
	}

	req, err := goversion.NewVersion(required)
	if err != nil {
		return false
	}
	cur, err := goversion.NewVersion(current)
	if err != nil {
		return false
	}

	return cur.GreaterThanOrEqual(req)
}

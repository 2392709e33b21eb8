package code

import (
	"crypto/md5"
	"encoding/hex"
)

// Derive считает код скидки из идентификатора рецензента.
// Алгоритм (md5, hex в нижнем регистре) - часть сетевого контракта:
// обе стороны должны получать одинаковый код из одинакового входа.
// Менять нельзя без смены версии протокола
func Derive(identity string) string {
	sum := md5.Sum([]byte(identity))
	return hex.EncodeToString(sum[:])
}

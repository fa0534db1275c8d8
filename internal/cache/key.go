package cache

import (
	"log"
	"strconv"

	"github.com/mitchellh/hashstructure/v2"
)

// keyPayload 缓存键的哈希载荷
//
// Args是切片，哈希对顺序敏感；Kwargs是map，hashstructure对map做无序哈希，
// 因此关键字参数的传入顺序不影响结果。
type keyPayload struct {
	Op     string
	Args   []interface{}
	Kwargs map[string]interface{}
}

// GenerateCacheKey 从操作名和参数生成确定性缓存键
//
// 相同输入在任何调用点都产生相同的键。哈希失败（理论上只有不可哈希类型
// 会触发）时退化为操作名本身，宁可缓存失效也不中断调用方。
func GenerateCacheKey(op string, args []interface{}, kwargs map[string]interface{}) string {
	hash, err := hashstructure.Hash(keyPayload{
		Op:     op,
		Args:   args,
		Kwargs: kwargs,
	}, hashstructure.FormatV2, nil)
	if err != nil {
		log.Printf("[Cache] 缓存键哈希失败 op=%s: %v", op, err)
		return "op:" + op
	}

	return strconv.FormatUint(hash, 16)
}

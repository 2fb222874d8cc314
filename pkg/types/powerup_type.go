// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// PowerupType 定义道具的类型
type PowerupType int

const (
	// PowerupUnknown 未知道具类型
	PowerupUnknown PowerupType = iota
	// PowerupShield 护盾
	PowerupShield
	// PowerupGun 火力
	PowerupGun
	// PowerupSpeed 速度
	PowerupSpeed
	// PowerupHealth 生命
	PowerupHealth
)

// AllPowerupTypes 掉落时可随机选择的道具类型，顺序固定
var AllPowerupTypes = []PowerupType{
	PowerupShield,
	PowerupGun,
	PowerupSpeed,
	PowerupHealth,
}

// String 返回道具类型的字符串表示（与配置文件中的键一致）
func (p PowerupType) String() string {
	switch p {
	case PowerupShield:
		return "shield"
	case PowerupGun:
		return "gun"
	case PowerupSpeed:
		return "speed"
	case PowerupHealth:
		return "health"
	default:
		return "unknown"
	}
}

// PowerupTypeFromString 将配置键转换为道具类型
// 未知字符串返回 PowerupUnknown
func PowerupTypeFromString(s string) PowerupType {
	for _, p := range AllPowerupTypes {
		if p.String() == s {
			return p
		}
	}
	return PowerupUnknown
}

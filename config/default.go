package config

import _ "embed"

// DefaultConfigYAML 嵌入的默认配置
//
//go:embed default.yaml
var DefaultConfigYAML []byte

package source

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"

	"github.com/sjzar/chatrecap/internal/model"
)

// Decode 解析导出的 JSON
// 兼容两种结构：顶层即记录数组，或 {"messages": [...]}
// createTime 允许字符串或小数写法，其余字段原样保留，由归一化阶段按需转换
// 只有不是对象、或 createTime 无法转换为数字的记录会被跳过
func Decode(data []byte) ([]*model.RawEntry, error) {
	var root interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unmarshal export: %w", err)
	}

	var items []interface{}
	switch v := root.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		if msgs, ok := v["messages"].([]interface{}); ok {
			items = msgs
		}
	case nil:
	default:
		return nil, fmt.Errorf("unexpected export root %T", root)
	}

	entries := make([]*model.RawEntry, 0, len(items))
	skipped := 0
	for _, item := range items {
		entry, err := decodeEntry(item)
		if err != nil {
			skipped++
			log.Debug().Err(err).Msg("skip malformed entry")
			continue
		}
		entries = append(entries, entry)
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Int("kept", len(entries)).Msg("some entries could not be decoded")
	}
	return entries, nil
}

func decodeEntry(item interface{}) (*model.RawEntry, error) {
	if _, ok := item.(map[string]interface{}); !ok {
		return nil, fmt.Errorf("entry is %T, not an object", item)
	}
	var entry model.RawEntry
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &entry,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(item); err != nil {
		return nil, err
	}
	return &entry, nil
}

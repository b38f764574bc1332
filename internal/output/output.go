package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sjzar/chatrecap/internal/errors"
	"github.com/sjzar/chatrecap/internal/model"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	// BaseName 输出文件名（不含扩展名）
	BaseName = "chat_report"
)

// NormalizeFormat 统一格式名称，"yml" 视为 yaml
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", errors.ErrUnsupportedFormat
	}
}

// Encode 将报告写入 w
func Encode(w io.Writer, r *model.Report, format string) error {
	format, err := NormalizeFormat(format)
	if err != nil {
		return err
	}
	switch format {
	case FormatYAML:
		b, err := MarshalYAML(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	}
}

// MarshalYAML 以 JSON 字段名和顺序输出 YAML
// 先编码为 JSON，再解析成 yaml.Node 并改成块风格，避免为每个结构体重复维护 yaml tag
func MarshalYAML(v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, fmt.Errorf("convert to yaml: %w", err)
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	if n.Kind == yaml.ScalarNode && n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
		// JSON 中的字符串都带引号，去掉后由编码器按需加引号
		n.Style = 0
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// WriteFile 写出报告文件并返回路径
func WriteFile(dir string, r *model.Report, format string) (string, error) {
	format, err := NormalizeFormat(format)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create output dir "+dir, http.StatusInternalServerError)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, r, format); err != nil {
		return "", err
	}
	path := filepath.Join(dir, BaseName+"."+format)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrap(err, "write report "+path, http.StatusInternalServerError)
	}
	return path, nil
}

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// 以下变量在构建时通过 -ldflags "-X" 注入
var (
	Version   = "(dev)"
	Commit    = ""
	BuildTime = ""
)

// GetMore 返回版本详情，mod 为 true 时附带依赖模块列表
func GetMore(mod bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "chatrecap %s\n", Version)
	if Commit != "" {
		fmt.Fprintf(&b, "commit: %s\n", Commit)
	}
	if BuildTime != "" {
		fmt.Fprintf(&b, "built: %s\n", BuildTime)
	}
	fmt.Fprintf(&b, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if !mod {
		return b.String()
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b.String()
	}
	b.WriteString("modules:\n")
	for _, dep := range info.Deps {
		fmt.Fprintf(&b, "  %s %s\n", dep.Path, dep.Version)
	}
	return b.String()
}

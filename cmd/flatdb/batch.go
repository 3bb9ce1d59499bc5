package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/hardcore-os/flatdb"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
)

// maxBatchLine 单行脚本的上限, 超出的 name/email 反正会被截断
const maxBatchLine = 4 << 20

// runBatch 逐行执行 stdin 中的动作, 任意一行失败则不写盘.
// 全部成功且有修改时只写一次.
func runBatch(db *flatdb.DB, in io.Reader, out io.Writer) error {
	var mutated bool
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBatchLine)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		words, err := shellquote.Split(text)
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		if len(words) == 0 {
			continue
		}
		cmd, err := parseCommand(words)
		if err != nil {
			return errors.WithMessagef(err, "line %d", line)
		}
		if cmd.action == actionCreate {
			return errors.Errorf("line %d: action %q not allowed in batch", line, cmd.action)
		}
		changed, err := cmd.apply(db, out)
		if err != nil {
			return errors.WithMessagef(err, "line %d", line)
		}
		mutated = mutated || changed
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read batch")
	}
	if !mutated {
		return nil
	}
	return db.Write()
}

package terminal

import (
	"strings"
	"unicode/utf8"
)

const (
	esc                 = "\x1b"
	bracketedPasteStart = "\x1b[200~"
	bracketedPasteEnd   = "\x1b[201~"
)

// SequenceStatus 转义序列状态
type SequenceStatus string

const (
	SequenceComplete   SequenceStatus = "complete"
	SequenceIncomplete SequenceStatus = "incomplete"
	SequenceNotEscape  SequenceStatus = "not-escape"
)

// IsCompleteSequence 检查 data 是完整的转义序列，还是需要更多数据
func IsCompleteSequence(data string) SequenceStatus {
	if !strings.HasPrefix(data, esc) {
		return SequenceNotEscape
	}
	if len(data) == 1 {
		return SequenceIncomplete
	}

	switch data[1] {
	case '[':
		// 旧式鼠标: ESC[M + 3 字节
		if strings.HasPrefix(data, esc+"[M") {
			if len(data) >= 6 {
				return SequenceComplete
			}
			return SequenceIncomplete
		}
		return isCompleteCsi(data)
	case ']':
		// OSC 以 BEL 或 ST 结束
		if strings.HasSuffix(data, "\x07") || strings.HasSuffix(data, esc+"\\") {
			return SequenceComplete
		}
		return SequenceIncomplete
	case 'P', '_':
		// DCS / APC 以 ST 结束
		if strings.HasSuffix(data, esc+"\\") {
			return SequenceComplete
		}
		return SequenceIncomplete
	case 'O':
		// SS3: ESC O 加一个字符
		if len(data) >= 3 {
			return SequenceComplete
		}
		return SequenceIncomplete
	}
	return SequenceComplete
}

// isCompleteCsi: ESC [ ... 以 0x40-0x7E 结束
func isCompleteCsi(data string) SequenceStatus {
	if len(data) < 3 {
		return SequenceIncomplete
	}
	payload := data[2:]
	last := payload[len(payload)-1]
	if last < 0x40 || last > 0x7e {
		return SequenceIncomplete
	}

	// SGR 鼠标: ESC[<B;X;Ym 或 ESC[<B;X;YM
	if strings.HasPrefix(payload, "<") {
		if last != 'M' && last != 'm' {
			return SequenceIncomplete
		}
		parts := strings.Split(payload[1:len(payload)-1], ";")
		if len(parts) != 3 {
			return SequenceIncomplete
		}
		for _, part := range parts {
			if !isDigits(part) {
				return SequenceIncomplete
			}
		}
	}
	return SequenceComplete
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// SplitSequences 把一段 stdin 数据切成单独的输入序列。
// 末尾不完整的转义序列作为 rest 返回，等待下一次读取。
// 括号粘贴的内容整体作为一个以 bracketedPasteStart 开头的序列返回。
func SplitSequences(data string) (seqs []string, rest string) {
	i := 0
	for i < len(data) {
		if strings.HasPrefix(data[i:], bracketedPasteStart) {
			end := strings.Index(data[i:], bracketedPasteEnd)
			if end < 0 {
				return seqs, data[i:]
			}
			end += i + len(bracketedPasteEnd)
			seqs = append(seqs, data[i:end])
			i = end
			continue
		}

		if data[i] != '\x1b' {
			_, size := utf8.DecodeRuneInString(data[i:])
			seqs = append(seqs, data[i:i+size])
			i += size
			continue
		}

		n, status := escapeLength(data[i:])
		if status == SequenceIncomplete {
			return seqs, data[i:]
		}
		seqs = append(seqs, data[i:i+n])
		i += n
	}
	return seqs, ""
}

// escapeLength 返回从 ESC 开始的最短完整序列长度
func escapeLength(data string) (int, SequenceStatus) {
	for n := 1; n <= len(data); n++ {
		if IsCompleteSequence(data[:n]) == SequenceComplete {
			return n, SequenceComplete
		}
	}
	return len(data), SequenceIncomplete
}

// PasteText 取出粘贴序列中的文本
func PasteText(seq string) (string, bool) {
	if !strings.HasPrefix(seq, bracketedPasteStart) || !strings.HasSuffix(seq, bracketedPasteEnd) {
		return "", false
	}
	return seq[len(bracketedPasteStart) : len(seq)-len(bracketedPasteEnd)], true
}

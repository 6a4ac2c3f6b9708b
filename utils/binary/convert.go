package binary

import "fmt"

// SwapWords 原地翻转p中每个16位字的字节序。
// len(p)必须为偶数，奇数长度需由调用方先补齐，否则panic。
func SwapWords(p []byte) {
	if len(p)%2 != 0 {
		panic(fmt.Sprintf("swap words: odd buffer length %d", len(p)))
	}

	for i := 0; i < len(p); i += 2 {
		p[i], p[i+1] = p[i+1], p[i]
	}
}

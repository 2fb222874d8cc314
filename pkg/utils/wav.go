package utils

import (
	"bytes"
	"encoding/binary"
	"math"
)

// EncodeWAV 将 16 位小端 PCM 封装为 RIFF/WAVE 文件
func EncodeWAV(pcm []byte, sampleRate, channels int) []byte {
	const bitsPerSample = 16
	blockAlign := channels * bitsPerSample / 8

	buf := &bytes.Buffer{}
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

// ToneSpec 合成音的参数
type ToneSpec struct {
	StartFreq float64 // 起始频率（Hz）
	EndFreq   float64 // 结束频率（Hz），与起始不同时为滑音
	Duration  float64 // 时长（秒）
	Amplitude float64 // 0 ~ 1
	Noise     bool    // 叠加伪随机噪声（爆炸声）
}

// SynthTone 合成单声道 16 位 PCM，音量线性衰减
func SynthTone(spec ToneSpec, sampleRate int) []byte {
	n := int(float64(sampleRate) * spec.Duration)
	pcm := make([]byte, n*2)
	phase := 0.0
	seed := uint32(2463534242)

	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := spec.StartFreq + (spec.EndFreq-spec.StartFreq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase)
		if spec.Noise {
			// xorshift32
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			v = 0.3*v + 0.7*(float64(seed)/float64(math.MaxUint32)*2-1)
		}

		s := int16(v * spec.Amplitude * (1 - progress) * 32767)
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(s))
	}
	return pcm
}

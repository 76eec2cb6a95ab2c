package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 背景音乐曲目表
// 项目不携带音频资源，曲目是程序化生成的和弦循环，
// 每个曲目由一组正弦波频率叠加而成
var musicTracks = [][]float64{
	{220.0, 277.18, 329.63}, // A 小三和弦
	{261.63, 329.63, 392.0}, // C 大三和弦
	{196.0, 246.94, 293.66}, // G 大三和弦
}

// MusicTrackCount 可用背景音乐曲目数量
func MusicTrackCount() int {
	return len(musicTracks)
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理背景音乐的播放和暂停
//   - 与设置联动：自动应用 SettingsManager 中的音乐开关
//
// audioContext 为 nil 时进入降级模式（无声，接口全部为空操作），
// 便于在无音频设备的环境和测试中使用
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager

	musicPlayers map[int]*audio.Player // 曲目索引 -> 播放器缓存
	currentMusic *audio.Player         // 当前播放的背景音乐
	currentTrack int                   // 当前曲目索引
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（降级模式）
//   - sm: SettingsManager 实例（用于读取音乐开关，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		musicPlayers:    make(map[int]*audio.Player),
		currentTrack:    -1,
	}
}

// PlayMusic 播放指定曲目的背景音乐（循环）
// 同一时间只播放一首；音乐开关关闭时不播放
//
// 返回是否成功开始（或已在）播放
func (am *AudioManager) PlayMusic(track int) bool {
	if am.audioContext == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}
	if track < 0 || track >= len(musicTracks) {
		track = 0
	}

	// 已在播放同一曲目时不重复启动
	if am.currentTrack == track && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.PauseMusic()

	player, ok := am.musicPlayers[track]
	if !ok {
		stream := newToneStream(am.audioContext.SampleRate(), musicTracks[track])
		p, err := am.audioContext.NewPlayer(stream)
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to create music player for track %d: %v", track, err)
			return false
		}
		p.SetVolume(0.3)
		am.musicPlayers[track] = p
		player = p
	}

	player.Play()
	am.currentMusic = player
	am.currentTrack = track
	log.Printf("[AudioManager] Playing music track %d", track)
	return true
}

// PauseMusic 暂停当前背景音乐
func (am *AudioManager) PauseMusic() {
	if am.currentMusic != nil && am.currentMusic.IsPlaying() {
		am.currentMusic.Pause()
	}
}

// CurrentTrack 返回当前曲目索引，未播放过返回 -1
func (am *AudioManager) CurrentTrack() int {
	return am.currentTrack
}

// toneStream 无限循环的正弦叠加波形流
// 输出 16 位小端立体声 PCM，实现 io.Reader 供 audio.Player 消费
type toneStream struct {
	sampleRate int
	freqs      []float64
	pos        int64 // 已生成的采样帧数
}

func newToneStream(sampleRate int, freqs []float64) *toneStream {
	return &toneStream{sampleRate: sampleRate, freqs: freqs}
}

// Read 生成下一段波形数据
func (s *toneStream) Read(buf []byte) (int, error) {
	// 每帧 4 字节（左右声道各 16 位）
	frames := len(buf) / 4
	amp := 0.25 / float64(len(s.freqs))

	for i := 0; i < frames; i++ {
		t := float64(s.pos+int64(i)) / float64(s.sampleRate)
		v := 0.0
		for _, f := range s.freqs {
			v += math.Sin(2 * math.Pi * f * t)
		}
		sample := int16(v * amp * math.MaxInt16)

		for ch := 0; ch < 2; ch++ {
			buf[i*4+ch*2] = byte(sample)
			buf[i*4+ch*2+1] = byte(sample >> 8)
		}
	}

	s.pos += int64(frames)
	return frames * 4, nil
}

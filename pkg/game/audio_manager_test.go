package game

import "testing"

// TestMusicTrackCount 测试曲目表非空
func TestMusicTrackCount(t *testing.T) {
	if MusicTrackCount() < 1 {
		t.Fatal("expected at least one music track")
	}
}

// TestNewAudioManager_Degraded 测试无音频上下文的降级模式
func TestNewAudioManager_Degraded(t *testing.T) {
	am := NewAudioManager(nil, nil)

	if am.PlayMusic(0) {
		t.Error("PlayMusic should report failure without an audio context")
	}
	if am.CurrentTrack() != -1 {
		t.Errorf("CurrentTrack() = %d, want -1", am.CurrentTrack())
	}

	// 空操作不崩溃
	am.PauseMusic()
}

// TestToneStream_Read 测试波形流产出合法的 PCM 数据
func TestToneStream_Read(t *testing.T) {
	stream := newToneStream(48000, []float64{440.0})

	buf := make([]byte, 4096)
	n, err := stream.Read(buf)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if n != len(buf) {
		t.Errorf("Read() = %d bytes, want %d", n, len(buf))
	}

	// 波形非恒零，且左右声道一致
	allZero := true
	for i := 0; i+3 < n; i += 4 {
		left := int16(uint16(buf[i]) | uint16(buf[i+1])<<8)
		right := int16(uint16(buf[i+2]) | uint16(buf[i+3])<<8)
		if left != right {
			t.Fatalf("channels differ at frame %d: %d vs %d", i/4, left, right)
		}
		if left != 0 {
			allZero = false
		}
	}
	if allZero {
		t.Error("tone stream produced silence")
	}

	// 流是连续的：下一次读取从上次位置继续，首帧不应重复 t=0 的零交叉
	if _, err := stream.Read(buf); err != nil {
		t.Fatalf("second Read() error: %v", err)
	}
}

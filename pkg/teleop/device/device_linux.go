// +build linux

package device

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"syscall"
	"unsafe"
)

// Linux joystick API, see linux/joystick.h.
const (
	jsiocGAxes    uint = 0x80016a11
	jsiocGButtons uint = 0x80016a12
	jsiocGName    uint = 0x80ff6a13

	jsEventButton uint8 = 0x01
	jsEventAxis   uint8 = 0x02
	jsEventInit   uint8 = 0x80
)

type js struct {
	file    *os.File
	index   int
	name    string
	axes    int
	buttons int
}

// Open opens /dev/input/js<index>.
func Open(index int) (Device, error) {
	f, err := os.OpenFile(fmt.Sprintf("/dev/input/js%d", index), os.O_RDONLY, 0666)
	if err != nil {
		return nil, err
	}
	d := &js{file: f, index: index}
	if err = d.describe(); err != nil {
		f.Close()
		return nil, err
	}
	return d, nil
}

// DetectAndOpen opens the first device present at or after startIndex.
// When none is present it returns nil without an error.
func DetectAndOpen(startIndex int) (Device, error) {
	for index := startIndex; index < 256; index++ {
		d, err := Open(index)
		if err != nil && os.IsNotExist(err) {
			continue
		}
		return d, err
	}
	return nil, nil
}

func (d *js) describe() error {
	var count uint8
	if errno := d.ioctl(jsiocGAxes, unsafe.Pointer(&count)); errno != 0 {
		return errno
	}
	d.axes = int(count)
	if errno := d.ioctl(jsiocGButtons, unsafe.Pointer(&count)); errno != 0 {
		return errno
	}
	d.buttons = int(count)
	var name [256]byte
	if errno := d.ioctl(jsiocGName, unsafe.Pointer(&name)); errno != 0 {
		return errno
	}
	if pos := bytes.IndexByte(name[:], 0); pos >= 0 {
		d.name = string(name[:pos])
	} else {
		d.name = string(name[:])
	}
	return nil
}

// Close implements Device.
func (d *js) Close() error {
	return d.file.Close()
}

// Index implements Device.
func (d *js) Index() int {
	return d.index
}

// Name implements Device.
func (d *js) Name() string {
	return d.name
}

// Axes implements Device.
func (d *js) Axes() int {
	return d.axes
}

// Buttons implements Device.
func (d *js) Buttons() int {
	return d.buttons
}

// ReadEvent decodes struct js_event records: u32 time, s16 value,
// u8 type, u8 number. Kinds other than axis and button are skipped.
func (d *js) ReadEvent() (Event, error) {
	var buf [8]byte
	for {
		if _, err := io.ReadFull(d.file, buf[:]); err != nil {
			return Event{}, err
		}
		ev := Event{
			Index: int(buf[7]),
			Value: int(int16(binary.LittleEndian.Uint16(buf[4:6]))),
			Init:  buf[6]&jsEventInit != 0,
		}
		switch buf[6] &^ jsEventInit {
		case jsEventAxis:
			ev.Kind = Axis
		case jsEventButton:
			ev.Kind = Button
		default:
			continue
		}
		return ev, nil
	}
}

func (d *js) ioctl(req uint, ptr unsafe.Pointer) syscall.Errno {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, d.file.Fd(), uintptr(req), uintptr(ptr))
	return errno
}

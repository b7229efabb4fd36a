package input

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

func readMmap(file *os.File) (*[]byte, error) {
	fileMmap, mmapErr := mmap.Map(file, mmap.RDONLY, 0)
	mmapBytes := (*[]byte)(&fileMmap)
	return mmapBytes, mmapErr
}

func unmap(mmapBytes *[]byte) error {
	fileMmap := (*mmap.MMap)(mmapBytes)
	return fileMmap.Unmap()
}

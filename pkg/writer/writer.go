package writer

import (
	"encoding/json"
	"os"
	"path"

	"github.com/eee-past-papers/papers/pkg/utils"
)

type Writer[T interface{}] struct {
	DirPath string
}

func NewWriter[T interface{}](dirPath string) (Writer[T], error) {
	err := utils.CreateFolderIfNotExists(dirPath)
	if err != nil {
		return Writer[T]{}, err
	}

	return Writer[T]{DirPath: dirPath}, nil
}

func (w *Writer[T]) ChangeDirPath(dirPath string) {
	w.DirPath = dirPath
}

func (w *Writer[T]) GetFilePath(filename string) string {
	return path.Join(w.DirPath, filename)
}

func (w *Writer[T]) Exists(filename string) (bool, error) {
	return utils.DoFileExists(w.GetFilePath(filename))
}

// Write replaces the whole content of filename.
func (w *Writer[T]) Write(filename string, data []byte) error {
	p := w.GetFilePath(filename)
	return os.WriteFile(p, data, 0664)
}

func (w *Writer[T]) Read(filename string) ([]byte, error) {
	p := w.GetFilePath(filename)
	return os.ReadFile(p)
}

// CopyIn copies srcPath into the writer folder as filename. An existing
// file is never touched: the error then matches fs.ErrExist.
func (w *Writer[T]) CopyIn(srcPath string, filename string) error {
	return utils.CopyFileNoClobber(srcPath, w.GetFilePath(filename), 0664)
}

func (w *Writer[T]) JsonWrite(filename string, data T, indent bool) error {
	var bytes []byte
	var err error

	if indent {
		bytes, err = json.MarshalIndent(data, "", "	")
	} else {
		bytes, err = json.Marshal(data)
	}

	if err != nil {
		return err
	}

	return w.Write(filename, bytes)
}

func (w *Writer[T]) JsonRead(filename string) (T, error) {
	var out T
	bytes, err := w.Read(filename)
	if err != nil {
		return out, err
	}

	err = json.Unmarshal(bytes, &out)
	if err != nil {
		return out, err
	}

	return out, nil
}

package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// TransactionCSV 一个事务csv文件,每行一个事务,列为事务中的项
// 每次Each都重新打开文件,从头流式遍历一遍,满足两趟挖掘对可重放数据源的要求
type TransactionCSV struct {
	Path  string
	Comma rune
}

func NewTransactionCSV(path string, comma rune) *TransactionCSV {
	if comma == 0 {
		comma = ','
	}
	return &TransactionCSV{Path: path, Comma: comma}
}

func (s *TransactionCSV) Each(fn func(tx []string) error) error {
	f, err := os.Open(s.Path)
	if err != nil {
		fmt.Println("opens a csv failed, err:", err)
		return ErrOpenCsv
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = s.Comma
	// 事务长度不定
	reader.FieldsPerRecord = -1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("read a csv failed, err:", err)
			return ErrReadCsv
		}
		tx := make([]string, 0, len(record))
		for _, col := range record {
			if col == "" {
				continue
			}
			tx = append(tx, col)
		}
		if err := fn(tx); err != nil {
			return err
		}
	}
	return nil
}

func CreateCsv(path string, data [][]string) error {
	csvFile, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer csvFile.Close()
	csvWriter := csv.NewWriter(csvFile)
	err = csvWriter.WriteAll(data)
	if err != nil {
		fmt.Printf("error (%v)", err)
		return err
	}
	return nil
}

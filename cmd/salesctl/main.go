// salesctl calcula o painel a partir de um snapshot em arquivo, sem subir a API
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("salesctl: falha na execução")
		os.Exit(1)
	}
}
